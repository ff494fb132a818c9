package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/service"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

// WidgetHandler exposes widget generation.
type WidgetHandler struct {
	service *service.WidgetService
	metrics *service.MetricsService
}

// NewWidgetHandler constructs handler.
func NewWidgetHandler(svc *service.WidgetService, metrics *service.MetricsService) *WidgetHandler {
	return &WidgetHandler{service: svc, metrics: metrics}
}

// Generate godoc
// @Summary Generate embed markup
// @Description Renders the civic action box HTML and companion script from assembled content
// @Tags Widget
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRequest true "Widget content"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /generate [post]
func (h *WidgetHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid widget payload"))
		return
	}

	res := h.service.Generate(req)
	h.metrics.RecordWidgetGenerated(res.Interactive)
	response.JSON(c, http.StatusOK, res, nil)
}
