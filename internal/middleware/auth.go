// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"errors"
	"strings"

	"wastetrack/internal/authz"
	apperrors "wastetrack/internal/errors"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing request data
const (
	PrincipalKey = "principal"
)

// SessionValidator resolves a bearer token to an authenticated principal.
// A token that parses but no longer matches the user's stored session is
// rejected as an expired session.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (authz.Principal, error)
}

// Auth returns a middleware that authenticates requests via bearer token and
// stores the resulting principal in the request context.
func Auth(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		principal, err := sessions.ValidateSession(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrSessionExpired):
				response.Unauthorized(c, err.Error())
			case errors.Is(err, apperrors.ErrStoreUnavailable):
				response.ServiceUnavailable(c, err.Error())
			default:
				response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
			}
			c.Abort()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns false when the request did not pass the Auth middleware.
func GetPrincipal(c *gin.Context) (authz.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return authz.Principal{}, false
	}
	principal, ok := value.(authz.Principal)
	return principal, ok
}
