package testimonial

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/testimonials", h.getTestimonials)
}

func (h *Handler) getTestimonials(c *fiber.Ctx) error {
	return c.JSON(h.repo.List(c.Query("category")))
}
