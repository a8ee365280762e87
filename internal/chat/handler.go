package chat

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	responder *Responder
}

func NewHandler(r *Responder) *Handler {
	return &Handler{responder: r}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) chat(c *fiber.Ctx) error {
	payload := new(chatRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(payload.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "message is required"})
	}

	return c.JSON(fiber.Map{"reply": h.responder.Reply(payload.Message)})
}
