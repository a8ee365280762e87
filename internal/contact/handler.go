package contact

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/oakratch/storefront-backend/internal/mailer"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/sendEmail", h.sendEmail)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/contacts", h.listContacts)
	router.Delete("/contacts/:id", h.deleteContact)
}

// sendEmail accepts a multipart form with name, email, subject, message
// and an optional file attachment.
func (h *Handler) sendEmail(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	subject := c.FormValue("subject")
	message := c.FormValue("message")

	var attachment *mailer.Attachment
	if file, err := c.FormFile("file"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not read attachment"})
		}
		defer f.Close()
		content, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "could not read attachment"})
		}
		attachment = &mailer.Attachment{Filename: file.Filename, Content: content}
	}

	created, err := h.service.Submit(name, email, subject, message, attachment)
	if err != nil {
		if err == ErrMissingFields {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to send message"})
	}

	return c.JSON(fiber.Map{"success": true, "id": created.ID})
}

func (h *Handler) listContacts(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) deleteContact(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "contact not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
