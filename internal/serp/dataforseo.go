package serp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the DataForSEO API root.
const DefaultBaseURL = "https://api.dataforseo.com"

const organicLivePath = "/v3/serp/google/organic/live/advanced"

// Fixed query parameters: Spanish results for Spain, desktop on Windows.
const (
	LocationCode = 2724
	LanguageCode = "es"
	Device       = "desktop"
	OS           = "windows"
	Depth        = 100
)

// Config configures a DataForSEO client.
type Config struct {
	BaseURL  string
	Username string
	Password string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
}

// Client queries the DataForSEO live organic endpoint.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

// NewClient creates a new DataForSEO client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// NewTask builds the fixed-locale query for a keyword.
func NewTask(keyword string) Task {
	return Task{
		Keyword:      keyword,
		LocationCode: LocationCode,
		LanguageCode: LanguageCode,
		Device:       Device,
		OS:           OS,
		Depth:        Depth,
	}
}

// Titles returns up to MaxTitles non-empty titles from the live organic
// results for keyword, in ranking order.
func (c *Client) Titles(ctx context.Context, keyword string) ([]string, error) {
	if c.username == "" || c.password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := c.search(ctx, NewTask(keyword))
	if err != nil {
		return nil, err
	}

	items, err := firstItems(resp)
	if err != nil {
		return nil, err
	}

	return ExtractTitles(items, MaxTitles), nil
}

// search sends a single-task batch and decodes the response envelope.
func (c *Client) search(ctx context.Context, task Task) (*Response, error) {
	body, err := json.Marshal([]Task{task})
	if err != nil {
		return nil, fmt.Errorf("failed to encode task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+organicLivePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serp request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read serp response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: HTTP %d", ErrProviderAuth, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrProviderStatus, resp.StatusCode, truncate(string(data), 200))
	}

	var decoded Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseShape, err)
	}

	slog.Debug("serp response received",
		"keyword", task.Keyword,
		"status_code", decoded.StatusCode,
		"tasks", len(decoded.Tasks))

	return &decoded, nil
}

// firstItems walks tasks[0].result[0].items, checking status codes on the way.
func firstItems(resp *Response) ([]Item, error) {
	if err := checkStatus(resp.StatusCode, resp.StatusMessage); err != nil {
		return nil, err
	}
	if len(resp.Tasks) == 0 {
		return nil, fmt.Errorf("%w: no tasks", ErrResponseShape)
	}

	task := resp.Tasks[0]
	if err := checkStatus(task.StatusCode, task.StatusMessage); err != nil {
		return nil, err
	}
	if len(task.Result) == 0 {
		return nil, fmt.Errorf("%w: task has no result", ErrResponseShape)
	}
	if task.Result[0].Items == nil {
		return nil, fmt.Errorf("%w: result has no items", ErrResponseShape)
	}

	return task.Result[0].Items, nil
}

// checkStatus maps a DataForSEO status code to an error. A zero code means
// the field was absent and is not treated as a failure.
func checkStatus(code int, message string) error {
	switch code {
	case 0, statusOK:
		return nil
	case statusAuthFailed, statusAuthForbidden:
		return fmt.Errorf("%w: %d %s", ErrProviderAuth, code, message)
	default:
		return fmt.Errorf("%w: %d %s", ErrProviderStatus, code, message)
	}
}

// ExtractTitles returns the first limit non-empty titles from items.
func ExtractTitles(items []Item, limit int) []string {
	titles := make([]string, 0, limit)
	for _, item := range items {
		if len(titles) == limit {
			break
		}
		if item.Title == "" {
			continue
		}
		titles = append(titles, item.Title)
	}
	return titles
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
