package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	"github.com/planet-detroit/civic-action-api/internal/service"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/response"
	"github.com/planet-detroit/civic-action-api/pkg/storage"
)

// ExportHandler exposes reader-response export jobs.
type ExportHandler struct {
	exports *service.ExportService
	store   *storage.LocalStorage
}

// NewExportHandler constructs handler.
func NewExportHandler(exports *service.ExportService, store *storage.LocalStorage) *ExportHandler {
	return &ExportHandler{exports: exports, store: store}
}

// Create godoc
// @Summary Queue a response export
// @Description Queues an export of reader responses to CSV or PDF
// @Tags Exports
// @Accept json
// @Produce json
// @Param payload body dto.CreateExportRequest true "Export request"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	var req dto.CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}

	job, err := h.exports.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, job, nil)
}

// Get godoc
// @Summary Export job status
// @Description Returns job status. Finished jobs carry a signed download URL
// @Tags Exports
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exports/{id} [get]
func (h *ExportHandler) Get(c *gin.Context) {
	job, err := h.exports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Download godoc
// @Summary Download an export artifact
// @Description Streams the artifact referenced by a signed token
// @Tags Exports
// @Produce application/octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} binary
// @Failure 403 {object} response.Envelope
// @Router /exports/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token required"))
		return
	}

	job, relPath, err := h.exports.ResolveDownload(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := h.store.Open(relPath)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "export artifact unreadable"))
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "export artifact unreadable"))
		return
	}

	contentType := "text/csv"
	if job.Format == models.ExportFormatPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(relPath)+`"`)
	c.DataFromReader(http.StatusOK, info.Size(), contentType, file, nil)
}
