// Package app assembles the fiber application.
package app

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tracklabs/projtrack/internal/api/v1/handlers"
	v1 "github.com/tracklabs/projtrack/internal/api/v1/routes"
)

// Options configures the HTTP application.
type Options struct {
	// AllowedOrigins is a comma-separated list of origins allowed to call
	// the API from a browser. Empty disables CORS handling entirely.
	AllowedOrigins string
}

// New builds the fiber app with middleware and the v1 routes registered.
func New(projectHandler *handlers.ProjectHandler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	if origins := strings.TrimSpace(opts.AllowedOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
		}))
	}

	v1.RegisterRoutes(app, projectHandler)

	return app
}

// errorHandler renders errors that escape the handlers, such as routing
// failures, with the same JSON shape the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
