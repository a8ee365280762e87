package subscriber

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/subscribe", h.subscribe)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/subscribers", h.listSubscribers)
	router.Get("/subscribers/export", h.exportSubscribers)
	router.Put("/subscribers/:id/status", h.updateStatus)
	router.Delete("/subscribers/:id", h.deleteSubscriber)
}

// RegisterLegacyRoutes keeps the old dashboard path alive. The caller
// supplies the auth guards since the path sits outside the admin group.
func (h *Handler) RegisterLegacyRoutes(app *fiber.App, guards ...fiber.Handler) {
	handlers := append(guards, h.listSubscribers)
	app.Get("/api/getSubscribers", handlers...)
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) subscribe(c *fiber.Ctx) error {
	payload := new(subscribeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	sub, err := h.service.Subscribe(payload.Email, payload.Name)
	if err != nil {
		switch err {
		case ErrInvalidEmail:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		case ErrEmailExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "email already subscribed"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "subscription failed"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "subscriber": sub})
}

func (h *Handler) listSubscribers(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.Query("search"), c.Query("status")))
}

func (h *Handler) exportSubscribers(c *fiber.Ctx) error {
	data, err := h.service.ExportCSV(c.Query("search"), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "export failed"})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="subscribers.csv"`)
	return c.Send(data)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sub, err := h.service.UpdateStatus(c.Params("id"), payload.Status)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "subscriber not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(sub)
}

func (h *Handler) deleteSubscriber(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "subscriber not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
