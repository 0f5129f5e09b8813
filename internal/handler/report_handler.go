package handler

import (
	"wastetrack/internal/models"
	"wastetrack/internal/service"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportHandler handles HTTP requests for CSV report exports.
type ReportHandler struct {
	service service.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service service.ReportServicer) *ReportHandler {
	return &ReportHandler{service: service}
}

// CreateReport godoc
// @Summary      Request a CSV export
// @Description  Queue an asynchronous CSV export of a team's waste logs. Managers export their own team; admins name a team in the body.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateReportRequest  false  "Export target"
// @Success      202      {object}  response.Response{data=models.Report}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Security     BearerAuth
// @Router       /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req models.CreateReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	var requestedTeam *primitive.ObjectID
	if req.TeamID != nil {
		id, err := primitive.ObjectIDFromHex(*req.TeamID)
		if err != nil {
			response.BadRequest(c, "invalid teamId")
			return
		}
		requestedTeam = &id
	}

	report, err := h.service.RequestReport(c.Request.Context(), p, requestedTeam)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Accepted(c, report)
}

// GetReport godoc
// @Summary      Get report by ID
// @Description  Retrieve an export's status. Once ready, the response carries a time-limited download URL.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  response.Response{data=models.Report}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	report, err := h.service.GetReport(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, report)
}
