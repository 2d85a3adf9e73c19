package handlers

import (
	"bufio"
	"fmt"
	"net/http"

	"Showcase/internal/services"
	"github.com/gofiber/fiber/v2"
)

type GroupHandler struct {
	service       services.GroupService
	exportService services.ExportService
	logService    services.LogService
}

func NewGroupHandler(service services.GroupService, exportService services.ExportService, logService services.LogService) *GroupHandler {
	return &GroupHandler{service: service, exportService: exportService, logService: logService}
}

func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	group, err := h.service.GetGroup(c.Params("groupId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(group)
}

func (h *GroupHandler) SetTitle(c *fiber.Ctx) error {
	var req struct {
		TitleImageID string `json:"titleImageId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	groupID := c.Params("groupId")
	if err := h.service.SetTitle(groupID, req.TitleImageID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"groupId": groupID, "titleImageId": req.TitleImageID})
}

func (h *GroupHandler) SetOrder(c *fiber.Ctx) error {
	var req struct {
		FileOrder []string `json:"fileOrder"`
	}
	if err := c.BodyParser(&req); err != nil || req.FileOrder == nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "fileOrder must be an array of ids"})
	}
	groupID := c.Params("groupId")
	updated, err := h.service.SetOrder(groupID, req.FileOrder)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"groupId": groupID, "updated": updated})
}

func (h *GroupHandler) DownloadGroup(c *fiber.Ctx) error {
	groupID := c.Params("groupId")
	export, err := h.exportService.PrepareGroupExport(groupID)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"%s\"", export.Filename))
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		if err := export.Write(w); err != nil {
			h.logService.Log.WithField("group", groupID).WithError(err).Error("zip export failed")
		}
		w.Flush()
	})
	return nil
}
