package handlers

import (
	"errors"
	"net/http"

	"Showcase/internal/services"
	"github.com/gofiber/fiber/v2"
)

func respondError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrBackupInProgress):
		status = http.StatusConflict
	}
	return c.Status(status).JSON(map[string]interface{}{"error": err.Error()})
}
