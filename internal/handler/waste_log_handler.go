package handler

import (
	"wastetrack/internal/models"
	"wastetrack/internal/service"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// WasteLogHandler handles HTTP requests for waste log operations.
type WasteLogHandler struct {
	service service.WasteLogServicer
}

// NewWasteLogHandler creates a new WasteLogHandler.
func NewWasteLogHandler(service service.WasteLogServicer) *WasteLogHandler {
	return &WasteLogHandler{service: service}
}

// CreateWasteLog godoc
// @Summary      Record a waste log
// @Description  Record a waste disposal entry. Members log against their own team; admins must name a team via the teamId query parameter.
// @Tags         waste-logs
// @Accept       json
// @Produce      json
// @Param        teamId   query     string                        false  "Team ID (admins only)"
// @Param        request  body      models.CreateWasteLogRequest  true   "Waste log details"
// @Success      201      {object}  response.Response{data=models.WasteLog}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /waste-logs [post]
func (h *WasteLogHandler) CreateWasteLog(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	requestedTeam, ok := teamScopeQuery(c)
	if !ok {
		return
	}

	var req models.CreateWasteLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	log, err := h.service.CreateWasteLog(c.Request.Context(), p, requestedTeam, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, log)
}

// ListWasteLogs godoc
// @Summary      List all waste logs
// @Description  List waste logs across every team, newest first. Admin only.
// @Tags         waste-logs
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=models.WasteLogListResponse}
// @Failure      403    {object}  response.Response
// @Security     BearerAuth
// @Router       /waste-logs [get]
func (h *WasteLogHandler) ListWasteLogs(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, limit := paginationQuery(c)

	result, err := h.service.ListWasteLogs(c.Request.Context(), p, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// GetWasteLog godoc
// @Summary      Get waste log by ID
// @Description  Retrieve a single waste log. Admins see everything, managers their team's entries, employees their own.
// @Tags         waste-logs
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Waste log ID"
// @Success      200  {object}  response.Response{data=models.WasteLog}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /waste-logs/{id} [get]
func (h *WasteLogHandler) GetWasteLog(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	log, err := h.service.GetWasteLog(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, log)
}

// UpdateWasteLog godoc
// @Summary      Update waste log
// @Description  Partially update a waste log's own fields; team and author never change. Admin only.
// @Tags         waste-logs
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Waste log ID"
// @Param        request  body      models.UpdateWasteLogRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.WasteLog}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /waste-logs/{id} [patch]
func (h *WasteLogHandler) UpdateWasteLog(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateWasteLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	log, err := h.service.UpdateWasteLog(c.Request.Context(), p, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, log)
}

// DeleteWasteLog godoc
// @Summary      Delete waste log
// @Description  Remove a waste log. Admin only.
// @Tags         waste-logs
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Waste log ID"
// @Success      204  "No Content"
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /waste-logs/{id} [delete]
func (h *WasteLogHandler) DeleteWasteLog(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteWasteLog(c.Request.Context(), p, id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
