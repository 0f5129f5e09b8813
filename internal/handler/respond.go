// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"strconv"

	"wastetrack/internal/authz"
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/middleware"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// respondError maps a service error to its HTTP status. Raw store errors
// never reach the client; anything unmapped becomes a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrSessionExpired):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrAdminTeamRequired),
		errors.Is(err, apperrors.ErrNotTeamMember),
		errors.Is(err, apperrors.ErrNoTeamAssigned):
		response.Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrAdminCannotHaveTeam),
		errors.Is(err, apperrors.ErrTeamRequired),
		errors.Is(err, apperrors.ErrTeamHasUsers):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrWasteLogNotFound),
		errors.Is(err, apperrors.ErrReportNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateRecord):
		response.Conflict(c, err.Error())
	case errors.Is(err, apperrors.ErrReportQueueFull),
		errors.Is(err, apperrors.ErrStoreUnavailable):
		response.ServiceUnavailable(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// principal fetches the authenticated principal; the Auth middleware
// guarantees it is present on protected routes.
func principal(c *gin.Context) (authz.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
		return authz.Principal{}, false
	}
	return p, true
}

// pathID parses an ObjectID path parameter, responding 400 on garbage.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// teamScopeQuery parses the optional teamId query parameter. Absent means
// "the principal's own team"; malformed is a 400.
func teamScopeQuery(c *gin.Context) (*primitive.ObjectID, bool) {
	raw := c.Query("teamId")
	if raw == "" {
		return nil, true
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		response.BadRequest(c, "invalid teamId")
		return nil, false
	}
	return &id, true
}

// paginationQuery parses page/limit query parameters with sane bounds.
func paginationQuery(c *gin.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
