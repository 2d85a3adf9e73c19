package routers

import (
	"Showcase/cmd"
	"Showcase/internal/config"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server, cfg *config.Configuration) {
	api := app.Group("/api")
	SetupMediaRouter(api, server)
	SetupGroupRouter(api, server)
	SetupBackupRouter(api, server)
	SetupSystemRouter(api, server)
	app.Static("/uploads", cfg.UploadsPath())
}
