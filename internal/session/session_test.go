package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	signed, err := GenerateToken(secret, 42, "jenny@example.com", RoleCustomer)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", tok.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected a valid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if int(claims["user_id"].(float64)) != 42 {
		t.Fatalf("expected user_id 42, got %v", claims["user_id"])
	}
	if claims["role"] != RoleCustomer {
		t.Fatalf("expected customer role, got %v", claims["role"])
	}
}

func TestGenerateToken_WrongSecretFails(t *testing.T) {
	signed, err := GenerateToken("secret-a", 1, "x@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatal("expected verification to fail with the wrong secret")
	}
}
