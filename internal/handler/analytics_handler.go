package handler

import (
	"wastetrack/internal/service"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for team analytics.
type AnalyticsHandler struct {
	service service.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service service.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// TeamLogs godoc
// @Summary      List a team's waste logs
// @Description  List a team's waste logs, newest first. Managers see their own team; admins name any team via teamId.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        teamId  query     string  false  "Team ID (admins only)"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  response.Response{data=models.WasteLogListResponse}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /analytics/team-logs [get]
func (h *AnalyticsHandler) TeamLogs(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	requestedTeam, ok := teamScopeQuery(c)
	if !ok {
		return
	}
	page, limit := paginationQuery(c)

	result, err := h.service.TeamLogs(c.Request.Context(), p, requestedTeam, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// TeamSummary godoc
// @Summary      Summarize a team's waste
// @Description  Aggregate a team's waste logs: entry count, total weight, per-type breakdown and the ten most recent entries.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        teamId  query     string  false  "Team ID (admins only)"
// @Success      200     {object}  response.Response{data=models.TeamWasteSummary}
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /analytics/team-summary [get]
func (h *AnalyticsHandler) TeamSummary(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	requestedTeam, ok := teamScopeQuery(c)
	if !ok {
		return
	}

	summary, err := h.service.TeamSummary(c.Request.Context(), p, requestedTeam)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, summary)
}
