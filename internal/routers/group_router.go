package routers

import (
	"Showcase/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupGroupRouter(router fiber.Router, server *cmd.Server) {
	groupHandler := server.GroupHandler
	router.Get("/groups/:groupId", groupHandler.GetGroup)
	router.Put("/groups/:groupId/title", groupHandler.SetTitle)
	router.Put("/groups/:groupId/order", groupHandler.SetOrder)
	router.Get("/groups/:groupId/download", groupHandler.DownloadGroup)
}
