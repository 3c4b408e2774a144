package handlers

import (
	"github.com/gofiber/fiber/v3"

	"seotitles/internal/config"
	"seotitles/internal/metrics"
	"seotitles/internal/models"
	"seotitles/internal/validation"
)

// TitleHandler serves the form and the generated results.
type TitleHandler struct {
	generator Generator
	cfg       *config.Config
}

// NewTitleHandler creates a new title handler.
func NewTitleHandler(generator Generator, cfg *config.Config) *TitleHandler {
	return &TitleHandler{generator: generator, cfg: cfg}
}

// Index renders the empty form.
func (h *TitleHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Result": models.NewRenderContext(),
	}, h.cfg))
}

// Generate runs the pipeline for the submitted keyword and renders the
// results. Pipeline errors are left to the ErrorHandler.
func (h *TitleHandler) Generate(c fiber.Ctx) error {
	keyword := validation.NormalizeKeyword(c.FormValue("keyword"))
	if valid, msg := validation.ValidateKeyword(keyword); !valid {
		metrics.RecordGeneration(models.OutcomeInvalidInput)
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	prefs := models.Preferences{
		Length: models.ParseLength(c.FormValue("length")),
		Focus:  models.ParseFocus(c.FormValue("focus")),
	}

	result, err := h.generator.Generate(c.Context(), keyword, prefs)
	if err != nil {
		return err
	}

	return c.Render("index", MergeBranding(fiber.Map{
		"Result": result,
	}, h.cfg))
}
