package notification

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/notifications", h.listNotifications)
	router.Put("/notifications/read-all", h.markAllRead)
	router.Put("/notifications/:id<[0-9]+>/read", h.markRead)
	router.Delete("/notifications/:id<[0-9]+>", h.deleteNotification)
}

func (h *Handler) listNotifications(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.Query("category")))
}

func (h *Handler) markRead(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	n, err := h.service.MarkRead(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "notification not found"})
	}
	return c.JSON(n)
}

func (h *Handler) markAllRead(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"updated": h.service.MarkAllRead()})
}

func (h *Handler) deleteNotification(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "notification not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
