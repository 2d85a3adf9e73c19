package routers

import (
	"Showcase/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupSystemRouter(router fiber.Router, server *cmd.Server) {
	systemHandler := server.SystemHandler
	router.Get("/storage", systemHandler.Storage)
	router.Get("/health", systemHandler.Health)
}
