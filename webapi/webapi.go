// Package webapi assembles the HTTP application.
package webapi

import (
	"log/slog"

	accountsvc "github.com/fintech-ro/bancar/pkg/service/account"
	"github.com/fintech-ro/bancar/webapi/account"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New builds the fiber application with all routes registered.
func New(svc *accountsvc.Service, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "bancar",
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	account.Routes(app, svc)

	if logger != nil {
		logger.Info("routes registered")
	}
	return app
}
