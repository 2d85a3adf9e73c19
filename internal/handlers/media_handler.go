package handlers

import (
	"net/http"

	"Showcase/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type MediaHandler struct {
	service      services.MediaService
	groupService services.GroupService
	validate     *validator.Validate
}

func NewMediaHandler(service services.MediaService, groupService services.GroupService) *MediaHandler {
	return &MediaHandler{service: service, groupService: groupService, validate: validator.New()}
}

func (h *MediaHandler) ListImages(c *fiber.Ctx) error {
	images, err := h.groupService.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"images": images})
}

func (h *MediaHandler) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "No file uploaded"})
	}

	item, err := h.service.Upload(services.UploadRequest{
		FileHeader:  fileHeader,
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		GroupID:     c.FormValue("groupId"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *MediaHandler) UploadLink(c *fiber.Ctx) error {
	var req services.LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "a valid http(s) url is required"})
	}

	item, err := h.service.UploadLink(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *MediaHandler) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	count, err := h.service.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{
		"message": "deleted",
		"id":      id,
		"count":   count,
	})
}
