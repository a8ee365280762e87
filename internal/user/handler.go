package user

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oakratch/storefront-backend/internal/session"
)

type Handler struct {
	service   *Service
	jwtSecret string
	secure    bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func NewHandler(service *Service, jwtSecret string, secure bool) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret, secure: secure}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/auth/register", h.register)
	app.Post("/api/auth/login", h.login)
	app.Post("/api/admin/login", h.adminLogin)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/auth/me", h.me)
	app.Post("/api/auth/logout", h.logout)
	// the handler accepts partial payloads, so PATCH behaviour is
	// satisfied by the same function
	app.Put("/api/auth/profile", h.updateProfile)
	app.Patch("/api/auth/profile", h.updateProfile)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/logout", h.adminLogout)
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Register(User{
		Name:      payload.Name,
		Email:     payload.Email,
		Password:  payload.Password,
		Phone:     payload.Phone,
		Role:      session.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		switch err {
		case ErrMissingFields, ErrPasswordTooShort:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		case ErrEmailExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "email already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "registration failed"})
		}
	}

	// registration logs the new user in immediately
	if err := h.issueSession(c, created, session.UserCookie); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to create session"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "user": sanitizeUser(created)})
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	user, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "invalid email or password"})
	}

	if err := h.issueSession(c, user, session.UserCookie); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to create session"})
	}
	return c.JSON(fiber.Map{"success": true, "user": sanitizeUser(user)})
}

func (h *Handler) adminLogin(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	user, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil || user.Role != session.RoleAdmin {
		// same message for bad credentials and non-admin accounts
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "invalid email or password"})
	}

	if err := h.issueSession(c, user, session.AdminCookie); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to create session"})
	}
	return c.JSON(fiber.Map{"success": true, "user": sanitizeUser(user)})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	session.ClearCookie(c, session.UserCookie, h.secure)
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) adminLogout(c *fiber.Ctx) error {
	session.ClearCookie(c, session.AdminCookie, h.secure)
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) me(c *fiber.Ctx) error {
	userID, err := session.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	user, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	return c.JSON(fiber.Map{"user": sanitizeUser(user)})
}

// profileUpdateRequest holds the fields the client may change. Pointers
// distinguish "not sent" from "set to empty".
type profileUpdateRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	userID, err := session.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	existing, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	var payload profileUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Phone != nil {
		existing.Phone = *payload.Phone
	}
	if payload.Avatar != nil {
		if *payload.Avatar == "" {
			existing.Avatar = nil
		} else {
			existing.Avatar = payload.Avatar
		}
	}
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := h.service.Update(userID, existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "user": sanitizeUser(updated)})
}

func (h *Handler) issueSession(c *fiber.Ctx, u User, cookie string) error {
	token, err := session.GenerateToken(h.jwtSecret, u.ID, u.Email, u.Role)
	if err != nil {
		return err
	}
	session.SetCookie(c, cookie, token, h.secure)
	return nil
}

func sanitizeUser(user User) User {
	user.Password = ""
	return user
}
