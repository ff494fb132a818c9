package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// ExportRepository persists export job metadata.
type ExportRepository struct {
	db *sqlx.DB
}

// NewExportRepository creates a new repository instance.
func NewExportRepository(db *sqlx.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

// Create inserts a queued export job.
func (r *ExportRepository) Create(ctx context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	if job.Status == "" {
		job.Status = models.ExportStatusQueued
	}

	const query = `INSERT INTO export_jobs (id, format, article_url, status, file_path, created_at, finished_at, error_message)
		VALUES (:id, :format, :article_url, :status, :file_path, :created_at, :finished_at, :error_message)`
	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("create export job: %w", err)
	}
	return nil
}

// FindByID returns an export job by id, or sql.ErrNoRows.
func (r *ExportRepository) FindByID(ctx context.Context, id string) (*models.ExportJob, error) {
	const query = `SELECT id, format, article_url, status, file_path, created_at, finished_at, error_message FROM export_jobs WHERE id = $1`
	var job models.ExportJob
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		return nil, err
	}
	return &job, nil
}

// MarkProcessing flips a queued job to processing.
func (r *ExportRepository) MarkProcessing(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE export_jobs SET status = $1 WHERE id = $2`, models.ExportStatusProcessing, id); err != nil {
		return fmt.Errorf("mark export processing: %w", err)
	}
	return nil
}

// MarkFinished records the artifact path for a completed job.
func (r *ExportRepository) MarkFinished(ctx context.Context, id, filePath string) error {
	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, `UPDATE export_jobs SET status = $1, file_path = $2, finished_at = $3 WHERE id = $4`,
		models.ExportStatusFinished, filePath, now, id); err != nil {
		return fmt.Errorf("mark export finished: %w", err)
	}
	return nil
}

// MarkFailed records the failure message for a job.
func (r *ExportRepository) MarkFailed(ctx context.Context, id, message string) error {
	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, `UPDATE export_jobs SET status = $1, error_message = $2, finished_at = $3 WHERE id = $4`,
		models.ExportStatusFailed, message, now, id); err != nil {
		return fmt.Errorf("mark export failed: %w", err)
	}
	return nil
}
