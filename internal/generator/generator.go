// Package generator runs the title generation pipeline: SERP titles, keyword
// extraction and title suggestion, strictly in that order.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seotitles/internal/keywords"
	"seotitles/internal/metrics"
	"seotitles/internal/models"
)

// TitleSearcher returns the top organic result titles for a keyword.
type TitleSearcher interface {
	Titles(ctx context.Context, keyword string) ([]string, error)
}

// TitleSuggester writes a new title from a set of source titles.
type TitleSuggester interface {
	Suggest(ctx context.Context, titles []string, prefs models.Preferences) (string, error)
}

// Stage identifies the pipeline step that failed.
type Stage string

// Pipeline stages
const (
	StageSERP    Stage = "serp"
	StageSuggest Stage = "suggest"
)

// Error is returned when a pipeline stage fails. It unwraps to the
// stage's own error.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Generator wires the pipeline stages together.
type Generator struct {
	searcher  TitleSearcher
	suggester TitleSuggester
}

// New creates a new generator.
func New(searcher TitleSearcher, suggester TitleSuggester) *Generator {
	return &Generator{searcher: searcher, suggester: suggester}
}

// Generate runs the full pipeline for keyword. Any stage failure aborts the
// run and no partial result is returned.
func (g *Generator) Generate(ctx context.Context, keyword string, prefs models.Preferences) (*models.RenderContext, error) {
	log := slog.With("keyword", keyword, "length", prefs.Length, "focus", prefs.Focus)

	start := time.Now()
	titles, err := g.searcher.Titles(ctx, keyword)
	metrics.ObserveUpstream(metrics.ProviderSERP, err, time.Since(start))
	if err != nil {
		metrics.RecordGeneration(models.OutcomeSERPError)
		log.Error("serp lookup failed", "error", err)
		return nil, &Error{Stage: StageSERP, Err: err}
	}

	kws := keywords.Extract(titles)
	metrics.ObserveKeywords(len(kws))
	log.Debug("keywords extracted", "titles", len(titles), "keywords", len(kws))

	start = time.Now()
	suggested, err := g.suggester.Suggest(ctx, titles, prefs)
	metrics.ObserveUpstream(metrics.ProviderSuggest, err, time.Since(start))
	if err != nil {
		metrics.RecordGeneration(models.OutcomeSuggestError)
		log.Error("title suggestion failed", "error", err)
		return nil, &Error{Stage: StageSuggest, Err: err}
	}

	metrics.RecordGeneration(models.OutcomeSuccess)
	log.Info("title generated", "titles", len(titles), "keywords", len(kws))

	if titles == nil {
		titles = []string{}
	}

	return &models.RenderContext{
		Keyword:        keyword,
		Preferences:    prefs,
		SuggestedTitle: suggested,
		Titles:         titles,
		Keywords:       kws,
	}, nil
}
