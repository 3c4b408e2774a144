package generator

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"seotitles/internal/models"
)

type fakeSearcher struct {
	titles  []string
	err     error
	calls   int
	keyword string
}

func (f *fakeSearcher) Titles(ctx context.Context, keyword string) ([]string, error) {
	f.calls++
	f.keyword = keyword
	return f.titles, f.err
}

type fakeSuggester struct {
	title  string
	err    error
	calls  int
	titles []string
	prefs  models.Preferences
}

func (f *fakeSuggester) Suggest(ctx context.Context, titles []string, prefs models.Preferences) (string, error) {
	f.calls++
	f.titles = titles
	f.prefs = prefs
	return f.title, f.err
}

func TestGenerate(t *testing.T) {
	searcher := &fakeSearcher{titles: []string{"Los 10 Mejores Trucos", "Mejores Trucos de Cocina"}}
	suggester := &fakeSuggester{title: "Trucos de cocina que funcionan"}
	prefs := models.Preferences{Length: models.LengthLong, Focus: models.FocusSpecific}

	rc, err := New(searcher, suggester).Generate(context.Background(), "trucos", prefs)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if searcher.keyword != "trucos" {
		t.Errorf("searcher keyword = %q, want trucos", searcher.keyword)
	}
	if !reflect.DeepEqual(suggester.titles, searcher.titles) {
		t.Errorf("suggester titles = %v, want %v", suggester.titles, searcher.titles)
	}
	if suggester.prefs != prefs {
		t.Errorf("suggester prefs = %+v, want %+v", suggester.prefs, prefs)
	}

	if rc.SuggestedTitle != "Trucos de cocina que funcionan" {
		t.Errorf("SuggestedTitle = %q", rc.SuggestedTitle)
	}
	if !reflect.DeepEqual(rc.Titles, searcher.titles) {
		t.Errorf("Titles = %v, want %v", rc.Titles, searcher.titles)
	}
	if len(rc.Keywords) != 4 || rc.Keywords[0] != (models.KeywordCount{Word: "mejores", Count: 2}) {
		t.Errorf("Keywords = %v", rc.Keywords)
	}
	if rc.Keyword != "trucos" || rc.Preferences != prefs {
		t.Errorf("echo fields = %q %+v", rc.Keyword, rc.Preferences)
	}
}

func TestGenerate_SERPFailureSkipsSuggestion(t *testing.T) {
	serpErr := errors.New("provider down")
	searcher := &fakeSearcher{err: serpErr}
	suggester := &fakeSuggester{title: "unused"}

	rc, err := New(searcher, suggester).Generate(context.Background(), "test", models.DefaultPreferences())
	if rc != nil {
		t.Errorf("Generate() = %+v, want nil result", rc)
	}
	if !errors.Is(err, serpErr) {
		t.Errorf("Generate() error = %v, want wrapped %v", err, serpErr)
	}

	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Stage != StageSERP {
		t.Errorf("Generate() error = %v, want serp stage error", err)
	}
	if suggester.calls != 0 {
		t.Errorf("suggester called %d times, want 0", suggester.calls)
	}
}

func TestGenerate_SuggestionFailure(t *testing.T) {
	suggestErr := errors.New("quota exceeded")
	searcher := &fakeSearcher{titles: []string{"a"}}
	suggester := &fakeSuggester{err: suggestErr}

	rc, err := New(searcher, suggester).Generate(context.Background(), "test", models.DefaultPreferences())
	if rc != nil {
		t.Errorf("Generate() = %+v, want nil result", rc)
	}

	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Stage != StageSuggest {
		t.Errorf("Generate() error = %v, want suggest stage error", err)
	}
	if !errors.Is(err, suggestErr) {
		t.Errorf("Generate() error = %v, want wrapped %v", err, suggestErr)
	}
}

func TestGenerate_NoTitles(t *testing.T) {
	searcher := &fakeSearcher{}
	suggester := &fakeSuggester{title: "algo"}

	rc, err := New(searcher, suggester).Generate(context.Background(), "zzz", models.DefaultPreferences())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if rc.Titles == nil || len(rc.Titles) != 0 {
		t.Errorf("Titles = %#v, want empty non-nil", rc.Titles)
	}
	if rc.Keywords == nil || len(rc.Keywords) != 0 {
		t.Errorf("Keywords = %#v, want empty non-nil", rc.Keywords)
	}
	if suggester.calls != 1 {
		t.Errorf("suggester called %d times, want 1", suggester.calls)
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Stage: StageSERP, Err: errors.New("boom")}
	if got := err.Error(); got != "serp stage failed: boom" {
		t.Errorf("Error() = %q", got)
	}
}
