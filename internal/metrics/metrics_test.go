package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal.WithLabelValues("success"))

	RecordGeneration("success")
	RecordGeneration("success")

	after := testutil.ToFloat64(generationsTotal.WithLabelValues("success"))
	if after-before != 2 {
		t.Errorf("generations_total{success} grew by %v, want 2", after-before)
	}
}

func TestObserveUpstream(t *testing.T) {
	ObserveUpstream(ProviderSERP, nil, 300*time.Millisecond)
	ObserveUpstream(ProviderSuggest, errors.New("boom"), time.Second)

	if got := testutil.CollectAndCount(upstreamDuration); got < 2 {
		t.Errorf("series count = %d, want at least 2", got)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	Init()
	Init()

	RecordGeneration("serp_error")
	ObserveKeywords(4)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{
		"seotitles_generations_total",
		"seotitles_extracted_keywords",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
