package session

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Cookie names for the two session scopes. Customers and admins carry
// separate cookies so an admin can stay signed in to the dashboard while
// browsing the shop as a customer.
const (
	UserCookie  = "user-session"
	AdminCookie = "admin-session"
)

// TokenExpiry matches the 7-day max-age used on the session cookies.
const TokenExpiry = 7 * 24 * time.Hour

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// GenerateToken signs a session token for the given user.
func GenerateToken(secret string, userID int, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(TokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SetCookie attaches a signed session token to the response under the
// given cookie name. The cookie is httpOnly; Secure is enabled in
// production so local development over plain HTTP keeps working.
func SetCookie(c *fiber.Ctx, name, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Expires:  time.Now().Add(TokenExpiry),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// ClearCookie expires the named session cookie.
func ClearCookie(c *fiber.Ctx, name string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// UserIDFromCtx extracts the user_id claim from the JWT token stored in
// `c.Locals("user")` by the jwt middleware. Several handlers need this,
// so it lives here for reuse.
func UserIDFromCtx(c *fiber.Ctx) (int, error) {
	claims, err := claimsFromCtx(c)
	if err != nil {
		return 0, err
	}
	raw, ok := claims["user_id"]
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fiber.ErrUnauthorized
		}
		return id, nil
	default:
		return 0, fiber.ErrUnauthorized
	}
}

// RoleFromCtx extracts the role claim from the parsed session token.
func RoleFromCtx(c *fiber.Ctx) (string, error) {
	claims, err := claimsFromCtx(c)
	if err != nil {
		return "", err
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fiber.ErrUnauthorized
	}
	return role, nil
}

func claimsFromCtx(c *fiber.Ctx) (jwt.MapClaims, error) {
	u := c.Locals("user")
	if u == nil {
		return nil, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// RequireAdmin is a route-level guard for the admin dashboard endpoints.
// The jwt middleware has already verified the signature at this point;
// this only checks the role claim.
func RequireAdmin(c *fiber.Ctx) error {
	role, err := RoleFromCtx(c)
	if err != nil || role != RoleAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.Next()
}
