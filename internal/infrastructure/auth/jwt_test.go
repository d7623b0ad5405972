package auth

import (
	"errors"
	"testing"
	"time"

	"imperium_store/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	manager := NewJWTManagerFromEnv()

	raw, err := manager.GenerateToken(entities.User{
		ID:    "user-1",
		Email: "ana@example.com",
		Role:  entities.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := manager.VerifyToken(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Email != "ana@example.com" || claims.Role != entities.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTManager_VerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	manager := NewJWTManagerFromEnv()

	t.Run("empty token", func(t *testing.T) {
		if _, err := manager.VerifyToken("   "); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := &JWTManager{secret: []byte("another-secret"), ttl: time.Hour}
		raw, err := other.GenerateToken(entities.User{ID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := manager.VerifyToken(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := manager.VerifyToken(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		raw, err := manager.GenerateToken(entities.User{Email: "semid@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := manager.VerifyToken(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
