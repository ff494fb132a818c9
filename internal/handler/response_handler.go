package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/service"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

// ResponseHandler exposes reader response endpoints. Create is public
// since published widgets post to it from readers' browsers.
type ResponseHandler struct {
	responses *service.ResponseService
	metrics   *service.MetricsService
}

// NewResponseHandler constructs handler.
func NewResponseHandler(responses *service.ResponseService, metrics *service.MetricsService) *ResponseHandler {
	return &ResponseHandler{responses: responses, metrics: metrics}
}

// Create godoc
// @Summary Submit a reader response
// @Description Records a response posted from a published widget
// @Tags Responses
// @Accept json
// @Produce json
// @Param payload body dto.CreateResponseRequest true "Reader response"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /civic-responses [post]
func (h *ResponseHandler) Create(c *gin.Context) {
	var req dto.CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid response payload"))
		return
	}

	created, err := h.responses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordResponse()
	}
	response.Created(c, created)
}

// List godoc
// @Summary List reader responses
// @Tags Responses
// @Produce json
// @Param article_url query string false "Filter by article URL"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /civic-responses [get]
func (h *ResponseHandler) List(c *gin.Context) {
	var req dto.ListResponsesRequest
	req.ArticleURL = strings.TrimSpace(c.Query("article_url"))
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		req.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		req.Limit = limit
	}

	responses, pagination, err := h.responses.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, responses, pagination)
}
