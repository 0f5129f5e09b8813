package middleware

import (
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRoles returns a middleware that rejects requests whose principal
// does not hold one of the given roles. Routes with per-resource rules (own
// record, own team) skip this gate and rely on the service checks instead.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		if !principal.Role.In(roles...) {
			response.Forbidden(c, apperrors.ErrForbidden.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
