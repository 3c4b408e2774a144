package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"seotitles/internal/config"
	"seotitles/internal/models"
)

// Generator runs the title generation pipeline.
type Generator interface {
	Generate(ctx context.Context, keyword string, prefs models.Preferences) (*models.RenderContext, error)
}

// ErrorHandler renders every error that reaches Fiber as the error view.
// A *fiber.Error keeps its status and message; anything else is a 500 with
// a generic message so no partial result is ever shown.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "No se pudo generar el título. Inténtalo de nuevo más tarde."

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			slog.Error("request failed",
				"request_id", requestid.FromContext(c),
				"method", c.Method(),
				"path", c.Path(),
				"error", err)
		}

		return c.Status(code).Render("error", MergeBranding(fiber.Map{
			"Title":   "Error",
			"Message": message,
		}, cfg))
	}
}
