package dto

import "github.com/planet-detroit/civic-action-api/internal/models"

// CreateExportRequest queues an export of reader responses.
type CreateExportRequest struct {
	Format     models.ExportFormat `json:"format" validate:"required,oneof=csv pdf"`
	ArticleURL string              `json:"article_url" validate:"omitempty,url"`
}
