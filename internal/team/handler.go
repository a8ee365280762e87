package team

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
	app.Get("/api/team", h.getTeam)
}

func (h *Handler) getTeam(c *fiber.Ctx) error {
	return c.JSON(h.repo.List())
}
