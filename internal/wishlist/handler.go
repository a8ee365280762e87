package wishlist

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/oakratch/storefront-backend/internal/product"
	"github.com/oakratch/storefront-backend/internal/session"
)

// Handler keeps wishlist-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/wishlist", h.getWishlist)
	app.Post("/api/wishlist", h.addToWishlist)
	app.Delete("/api/wishlist/:productId<[0-9]+>", h.removeFromWishlist)
	app.Get("/api/wishlist/:productId<[0-9]+>", h.contains)
}

type wishlistRequest struct {
	ProductID int `json:"productId"`
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	userID, err := session.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.List(userID)
	if err != nil {
		return wishlistError(c, err)
	}
	return c.JSON(items)
}

func (h *Handler) addToWishlist(c *fiber.Ctx) error {
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	userID, err := session.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.Add(userID, payload.ProductID)
	if err != nil {
		return wishlistError(c, err)
	}
	return c.JSON(items)
}

func (h *Handler) removeFromWishlist(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	userID, err := session.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.Remove(userID, productID)
	if err != nil {
		return wishlistError(c, err)
	}
	return c.JSON(items)
}

func (h *Handler) contains(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	userID, err := session.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	saved, err := h.service.Contains(userID, productID)
	if err != nil {
		return wishlistError(c, err)
	}
	return c.JSON(fiber.Map{"productId": productID, "saved": saved})
}

func wishlistError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case product.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
