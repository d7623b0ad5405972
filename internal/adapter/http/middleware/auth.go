package middleware

import (
	"net/http"
	"strings"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/infrastructure/auth"
	"imperium_store/pkg"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth and read by handlers.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
)

// RequireAuth validates the Authorization bearer token and stores the caller's
// identity on the gin context.
func RequireAuth(manager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		claims, err := manager.VerifyToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRole) != entities.RoleAdmin {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
