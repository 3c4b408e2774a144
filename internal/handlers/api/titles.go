package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"seotitles/internal/generator"
	"seotitles/internal/metrics"
	"seotitles/internal/models"
	"seotitles/internal/validation"
)

// Generator runs the title generation pipeline.
type Generator interface {
	Generate(ctx context.Context, keyword string, prefs models.Preferences) (*models.RenderContext, error)
}

// TitlesHandler exposes title generation as JSON.
type TitlesHandler struct {
	generator Generator
}

// NewTitlesHandler creates a new API titles handler.
func NewTitlesHandler(g Generator) *TitlesHandler {
	return &TitlesHandler{generator: g}
}

// Create generates a title from a JSON or form body.
func (h *TitlesHandler) Create(c fiber.Ctx) error {
	var req models.TitlesAPIRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	keyword := validation.NormalizeKeyword(req.Keyword)
	if valid, msg := validation.ValidateKeyword(keyword); !valid {
		metrics.RecordGeneration(models.OutcomeInvalidInput)
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	prefs := models.Preferences{
		Length: models.ParseLength(req.Length),
		Focus:  models.ParseFocus(req.Focus),
	}

	result, err := h.generator.Generate(c.Context(), keyword, prefs)
	if err != nil {
		var genErr *generator.Error
		if errors.As(err, &genErr) {
			return jsonError(c, fiber.StatusBadGateway, string(genErr.Stage)+" provider failed")
		}
		return jsonError(c, fiber.StatusInternalServerError, "title generation failed")
	}

	return jsonSuccess(c, models.NewTitlesAPIResponse(result))
}
