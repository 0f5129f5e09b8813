package handler

import (
	"wastetrack/internal/models"
	"wastetrack/internal/service"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam godoc
// @Summary      Create a team
// @Description  Create a new team. Admin only.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTeamRequest  true  "Team details"
// @Success      201      {object}  response.Response{data=models.Team}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), p, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, team)
}

// ListTeams godoc
// @Summary      List teams
// @Description  List teams visible to the caller: admins see every team, members only their own.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=models.TeamListResponse}
// @Security     BearerAuth
// @Router       /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, limit := paginationQuery(c)

	result, err := h.service.ListTeams(c.Request.Context(), p, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// GetTeam godoc
// @Summary      Get team by ID
// @Description  Retrieve a single team. Members can only read their own team.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Team ID"
// @Success      200  {object}  response.Response{data=models.Team}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, team)
}

// UpdateTeam godoc
// @Summary      Update team
// @Description  Partially update a team. Admin only.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Team ID"
// @Param        request  body      models.UpdateTeamRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Team}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), p, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, team)
}

// DeleteTeam godoc
// @Summary      Delete team
// @Description  Remove a team. Fails while users are still assigned to it. Admin only.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Team ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), p, id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
