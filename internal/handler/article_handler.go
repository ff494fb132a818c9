package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/service"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

// ArticleHandler exposes article fetching and analysis.
type ArticleHandler struct {
	service *service.ArticleService
}

// NewArticleHandler constructs handler.
func NewArticleHandler(svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: svc}
}

// Fetch godoc
// @Summary Fetch article text
// @Description Resolves a planetdetroit.org URL to its title and plain text
// @Tags Articles
// @Accept json
// @Produce json
// @Param payload body dto.FetchArticleRequest true "Article URL"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /articles/fetch [post]
func (h *ArticleHandler) Fetch(c *gin.Context) {
	var req dto.FetchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid fetch payload"))
		return
	}

	article, err := h.service.Fetch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

// Analyze godoc
// @Summary Analyze article text
// @Description Proxies article text to the external analyzer and relays its suggestions
// @Tags Articles
// @Accept json
// @Produce json
// @Param payload body dto.AnalyzeArticleRequest true "Article text"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /articles/analyze [post]
func (h *ArticleHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid analyze payload"))
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
