package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/service"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

// DraftHandler exposes builder autosave endpoints. Drafts are keyed by
// the article slug the editor is working on.
type DraftHandler struct {
	drafts *service.DraftService
}

// NewDraftHandler constructs handler.
func NewDraftHandler(drafts *service.DraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

func draftKey(c *gin.Context) (string, bool) {
	key := strings.TrimSpace(c.Query("key"))
	if key == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "key required"))
		return "", false
	}
	return key, true
}

// Get godoc
// @Summary Load a saved draft
// @Tags Drafts
// @Produce json
// @Param key query string true "Draft key"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	key, ok := draftKey(c)
	if !ok {
		return
	}
	draft, err := h.drafts.Get(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// Save godoc
// @Summary Save a draft
// @Description Upserts the builder state under the given key and refreshes its expiry
// @Tags Drafts
// @Accept json
// @Produce json
// @Param key query string true "Draft key"
// @Param payload body dto.SaveDraftRequest true "Builder state"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /draft [put]
func (h *DraftHandler) Save(c *gin.Context) {
	key, ok := draftKey(c)
	if !ok {
		return
	}
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid draft payload"))
		return
	}
	draft, err := h.drafts.Save(c.Request.Context(), key, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// Delete godoc
// @Summary Delete a draft
// @Tags Drafts
// @Produce json
// @Param key query string true "Draft key"
// @Success 204 {object} response.Envelope
// @Router /draft [delete]
func (h *DraftHandler) Delete(c *gin.Context) {
	key, ok := draftKey(c)
	if !ok {
		return
	}
	if err := h.drafts.Delete(c.Request.Context(), key); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
