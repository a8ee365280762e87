package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id<[0-9]+>", h.getProduct)
}

// getProducts supports optional ?category= and ?q= filters. When both are
// present the category filter wins.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(h.service.ListByCategory(category))
	}
	if q := c.Query("q"); q != "" {
		return c.JSON(h.service.Search(q))
	}
	return c.JSON(h.service.List())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}
