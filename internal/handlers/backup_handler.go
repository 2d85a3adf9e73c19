package handlers

import (
	"net/http"

	"Showcase/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BackupHandler struct {
	service   services.BackupService
	scheduler *services.BackupScheduler
}

func NewBackupHandler(service services.BackupService, scheduler *services.BackupScheduler) *BackupHandler {
	return &BackupHandler{service: service, scheduler: scheduler}
}

func (h *BackupHandler) CreateBackup(c *fiber.Ctx) error {
	backup, err := h.scheduler.ForceBackup()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(backup)
}

func (h *BackupHandler) ListBackups(c *fiber.Ctx) error {
	backups, err := h.service.ListBackups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"backups": backups})
}

func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	result, err := h.service.Restore(c.Params("backupName"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
