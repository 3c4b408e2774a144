// Package suggest asks an OpenAI-compatible chat-completion API to write a
// new title from a list of well-ranked titles.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"seotitles/internal/models"
)

// Suggestion errors.
var (
	ErrMissingAPIKey = errors.New("suggest: API key not configured")
	ErrSuggestionAPI = errors.New("suggest: chat completion failed")
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT3Dot5Turbo

// Placeholder is returned when the API answers without any choice.
const Placeholder = "No se pudo generar un tema."

// SystemPrompt sets the assistant's role.
const SystemPrompt = "Eres un experto en marketing online y SEO."

// Config configures a suggestion client.
type Config struct {
	APIKey string
	// BaseURL overrides the OpenAI endpoint, e.g. for a compatible gateway.
	BaseURL string
	Model   string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
}

// Client generates title suggestions.
type Client struct {
	ai     *openai.Client
	apiKey string
	model  string
}

// NewClient creates a new suggestion client.
func NewClient(cfg Config) *Client {
	transportCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		transportCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	transportCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		ai:     openai.NewClientWithConfig(transportCfg),
		apiKey: cfg.APIKey,
		model:  model,
	}
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string {
	return c.model
}

// Suggest returns one suggested title for titles, shaped by prefs.
func (c *Client) Suggest(ctx context.Context, titles []string, prefs models.Preferences) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(titles, prefs)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSuggestionAPI, err)
	}

	if len(resp.Choices) == 0 {
		slog.Warn("chat completion returned no choices", "model", c.model)
		return Placeholder, nil
	}

	return resp.Choices[0].Message.Content, nil
}

// LengthPhrase describes the requested title length.
func LengthPhrase(l models.Length) string {
	switch l {
	case models.LengthLong:
		return "un título largo y detallado"
	case models.LengthShort:
		return "un título corto y conciso"
	default:
		return "un título de longitud media"
	}
}

// FocusPhrase describes the requested keyword focus.
func FocusPhrase(f models.Focus) string {
	if f == models.FocusSpecific {
		return "con un enfoque en términos específicos y técnicos"
	}
	return "con un enfoque en términos más generales y amplios"
}

// BuildPrompt composes the user message sent to the model.
func BuildPrompt(titles []string, prefs models.Preferences) string {
	return fmt.Sprintf("Genera %s %s, basado en los siguientes títulos de artículos bien posicionados en Google: %s",
		LengthPhrase(prefs.Length),
		FocusPhrase(prefs.Focus),
		strings.Join(titles, ", "))
}
