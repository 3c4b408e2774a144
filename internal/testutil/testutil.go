// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Provider is a fake upstream provider backed by an httptest server.
type Provider struct {
	// URL is the base URL to configure the client with.
	URL   string
	calls atomic.Int32
}

// Calls returns how many requests the provider has received.
func (p *Provider) Calls() int {
	return int(p.calls.Load())
}

// SERPServer starts a DataForSEO stand-in that answers every request with
// the given HTTP status and one organic item per title.
func SERPServer(t *testing.T, status int, titles ...string) *Provider {
	t.Helper()

	items := make([]map[string]any, 0, len(titles))
	for i, title := range titles {
		items = append(items, map[string]any{
			"type":          "organic",
			"rank_absolute": i + 1,
			"title":         title,
			"url":           fmt.Sprintf("https://example.com/%d", i+1),
		})
	}
	body, err := json.Marshal(map[string]any{
		"status_code":    20000,
		"status_message": "Ok.",
		"tasks": []map[string]any{{
			"id":          "test-task",
			"status_code": 20000,
			"result":      []map[string]any{{"items": items}},
		}},
	})
	if err != nil {
		t.Fatalf("failed to encode SERP fixture: %v", err)
	}

	p := &Provider{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)

	p.URL = srv.URL
	return p
}

// OpenAIServer starts an OpenAI-compatible stand-in whose chat completions
// return one choice per content string. URL already includes the /v1 prefix.
func OpenAIServer(t *testing.T, contents ...string) *Provider {
	t.Helper()

	choices := make([]map[string]any, 0, len(contents))
	for i, content := range contents {
		choices = append(choices, map[string]any{
			"index":         i,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": "stop",
		})
	}
	body, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"choices": choices,
	})
	if err != nil {
		t.Fatalf("failed to encode completion fixture: %v", err)
	}

	p := &Provider{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		p.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p.URL = srv.URL + "/v1"
	return p
}
