package routers

import (
	"Showcase/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupMediaRouter(router fiber.Router, server *cmd.Server) {
	mediaHandler := server.MediaHandler
	router.Get("/images", mediaHandler.ListImages)
	router.Post("/upload", mediaHandler.UploadFile)
	router.Post("/upload-link", mediaHandler.UploadLink)
	router.Delete("/images/:id", mediaHandler.DeleteItem)
}
