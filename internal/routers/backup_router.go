package routers

import (
	"Showcase/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupBackupRouter(router fiber.Router, server *cmd.Server) {
	backupHandler := server.BackupHandler
	router.Post("/backup", backupHandler.CreateBackup)
	router.Get("/backups", backupHandler.ListBackups)
	router.Post("/restore/:backupName", backupHandler.Restore)
}
