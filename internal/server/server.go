package server

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/google/uuid"

	"seotitles/internal/config"
	"seotitles/internal/handlers"
	"seotitles/web"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	// Setup template engine
	engine := web.NewEngine()
	engine.Reload(cfg.IsDev())

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.SiteTitle,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: handlers.ErrorHandler(cfg),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${respHeader:X-Request-ID} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Static files
	app.Get("/static/*", static.New("", static.Config{
		FS: web.Static(),
	}))

	return &Server{
		App: app,
		Cfg: cfg,
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	if s.Cfg.IsDev() {
		log.Printf("Starting server in development mode on %s", s.Cfg.ServerAddr)
	}
	return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
		DisableStartupMessage: !s.Cfg.IsDev(),
	})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
