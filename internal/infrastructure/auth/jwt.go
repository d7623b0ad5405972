package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"imperium_store/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the JWT payload the store issues and accepts. Subject doubles as
// the user ID in the users table.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens. The signing key comes from
// JWT_SECRET; a default is provided for local development only.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManagerFromEnv() *JWTManager {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "imperium-local-secret"
	}
	return &JWTManager{secret: []byte(secret), ttl: defaultTokenTTL}
}

// GenerateToken mints a token for a user. The identity provider issues the
// tokens in production; this exists for local development and tests.
func (m *JWTManager) GenerateToken(user entities.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyToken parses and validates a raw token string, returning its claims.
func (m *JWTManager) VerifyToken(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
