package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name     string
	DocsFile string // vacío o inexistente = sin /docs
}

// NewApp arma la aplicación Fiber: recover, request id, log de peticiones, /health, /docs y la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}

	// Swagger UI: http://localhost:<port>/docs
	if cfg.DocsFile != "" {
		if _, err := os.Stat(cfg.DocsFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsFile,
				Path:     "docs",
				Title:    cfg.Name + " API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}
