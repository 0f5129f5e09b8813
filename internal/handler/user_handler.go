package handler

import (
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/internal/service"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	userService service.UserServicer
	authService service.AuthServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserServicer, authService service.AuthServicer) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Create a user account with a role and team assignment. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateUserRequest  true  "User details"
// @Success      201      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), p, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, user)
}

// ListUsers godoc
// @Summary      List users
// @Description  List all users, paginated. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=models.UserListResponse}
// @Failure      403    {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, limit := paginationQuery(c)

	result, err := h.userService.ListUsers(c.Request.Context(), p, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// GetCurrentUser godoc
// @Summary      Get the current user
// @Description  Retrieve the authenticated user's own record
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), p, p.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Retrieve a single user. Admins read anyone, everyone else only themselves.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Partially update a user. Role and team changes are validated together; promoting to admin clears the team. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "User ID"
// @Param        request  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), p, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Remove a user from the system. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      204  "No Content"
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), p, id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

// InvalidateToken godoc
// @Summary      Invalidate a user's session
// @Description  Clear a user's stored session token, forcing a new login. Admins may target anyone, everyone else only themselves.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      204  "No Content"
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/invalidate-token [post]
func (h *UserHandler) InvalidateToken(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if !p.IsAdmin() && p.ID != id {
		respondError(c, apperrors.ErrForbidden)
		return
	}

	if err := h.authService.InvalidateToken(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
