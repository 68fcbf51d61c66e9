// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	xerrors "authbase-service/internal/pkg/errors"
	"authbase-service/internal/pkg/identity"
	"authbase-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	verifier identity.Verifier
}

func NewAuthMiddleware(verifier identity.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Auth resolves the bearer token through the external identity provider and
// stashes the principal in the request context. Token issuance and
// verification stay with the provider; this only asks who the token is.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		id, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrUnauthorized) {
				response.Error(c, http.StatusUnauthorized, "invalid or expired token", nil)
				return
			}
			response.Error(c, http.StatusBadGateway, "identity provider unavailable", err)
			return
		}

		c.Set("user_id", id.ID)
		c.Set("email", id.Email)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// OptionalAuth resolves the principal when a valid token is present but lets
// anonymous requests through. Used on routes like profile visits where the
// visitor may not be signed in.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		id, err := m.verifier.Verify(c.Request.Context(), token)
		if err == nil {
			c.Set("user_id", id.ID)
			c.Set("email", id.Email)
		}

		c.Next()
	}
}
