package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/logger"
	"github.com/cosq-in/memochan/internal/pipeline"
)

// Server is the request-mode front-end: one job per invocation, input
// delivered as a URL, no state kept between requests apart from the warm
// capabilities inside the pipeline.
type Server struct {
	app             *fiber.App
	cfg             *config.Config
	logger          logger.Logger
	pipeline        pipeline.Pipeline
	downloadTimeout time.Duration
}

// New creates the worker HTTP server.
func New(cfg *config.Config, log logger.Logger, pipe pipeline.Pipeline) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		// Long-running inference: requests may take minutes.
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 2 * time.Hour,
	})

	s := &Server{
		app:             app,
		cfg:             cfg,
		logger:          log,
		pipeline:        pipe,
		downloadTimeout: time.Duration(cfg.Server.DownloadTimeoutSeconds) * time.Second,
	}

	app.Get("/health", s.handleHealth)
	app.Post("/run", s.handleRun)

	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving requests until Shutdown is called.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
