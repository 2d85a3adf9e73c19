package handlers

import (
	"net/http"

	"Showcase/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SystemHandler struct {
	service services.SystemService
}

func NewSystemHandler(service services.SystemService) *SystemHandler {
	return &SystemHandler{service: service}
}

func (h *SystemHandler) Storage(c *fiber.Ctx) error {
	usage, err := h.service.StorageUsage()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usage)
}

func (h *SystemHandler) Health(c *fiber.Ctx) error {
	health := h.service.Health()
	status := http.StatusOK
	if health.Status != services.HealthHealthy {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(health)
}
