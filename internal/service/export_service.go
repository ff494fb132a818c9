package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	"github.com/planet-detroit/civic-action-api/internal/repository"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/export"
	"github.com/planet-detroit/civic-action-api/pkg/jobs"
	"github.com/planet-detroit/civic-action-api/pkg/storage"
)

type exportRepository interface {
	Create(ctx context.Context, job *models.ExportJob) error
	FindByID(ctx context.Context, id string) (*models.ExportJob, error)
	MarkProcessing(ctx context.Context, id string) error
	MarkFinished(ctx context.Context, id, filePath string) error
	MarkFailed(ctx context.Context, id, message string) error
}

type exportResponseReader interface {
	ListAll(ctx context.Context, articleURL string) ([]models.CivicResponse, error)
}

type exportQueue interface {
	Enqueue(job jobs.Job) error
}

// ExportService queues and processes reader-response exports. Artifacts
// land in local storage and are downloaded through signed tokens.
type ExportService struct {
	repo      exportRepository
	responses exportResponseReader
	queue     exportQueue
	store     *storage.LocalStorage
	signer    *storage.SignedURLSigner
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(repo exportRepository, responses exportResponseReader, queue exportQueue, store *storage.LocalStorage, signer *storage.SignedURLSigner, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:      repo,
		responses: responses,
		queue:     queue,
		store:     store,
		signer:    signer,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
	}
}

// Create records a queued export job and hands it to the worker pool.
func (s *ExportService) Create(ctx context.Context, req dto.CreateExportRequest) (*models.ExportJob, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}

	job := &models.ExportJob{
		Format:     req.Format,
		ArticleURL: req.ArticleURL,
		Status:     models.ExportStatusQueued,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create export job")
	}

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: "response_export", Payload: job.ID}); err != nil {
		s.markFailed(context.Background(), job.ID, "queue full")
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}
	return job, nil
}

// Get returns job status. Finished jobs carry a freshly signed
// download URL.
func (s *ExportService) Get(ctx context.Context, id string) (*models.ExportJob, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export job")
	}
	if job.Status == models.ExportStatusFinished && job.FilePath != nil && s.signer != nil {
		token, _, err := s.signer.Generate(job.ID, *job.FilePath)
		if err != nil {
			s.logger.Warn("failed to sign export download", zap.String("job_id", job.ID), zap.Error(err))
		} else {
			url := "/api/exports/download?token=" + token
			job.DownloadURL = &url
		}
	}
	return job, nil
}

// ResolveDownload validates a signed token and opens the artifact.
func (s *ExportService) ResolveDownload(ctx context.Context, token string) (*models.ExportJob, string, error) {
	jobID, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")
	}
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	if job.Status != models.ExportStatusFinished || job.FilePath == nil || *job.FilePath != relPath {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export artifact not available")
	}
	return job, relPath, nil
}

// HandleJob renders the export artifact for a queued job. Wired as the
// worker-pool handler.
func (s *ExportService) HandleJob(ctx context.Context, job jobs.Job) error {
	jobID, ok := job.Payload.(string)
	if !ok {
		return fmt.Errorf("unexpected export payload %T", job.Payload)
	}
	record, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load export job %s: %w", jobID, err)
	}
	if err := s.repo.MarkProcessing(ctx, jobID); err != nil {
		return err
	}

	responses, err := s.responses.ListAll(ctx, record.ArticleURL)
	if err != nil {
		s.markFailed(ctx, jobID, err.Error())
		return err
	}

	data := buildResponseDataset(responses)
	var rendered []byte
	switch record.Format {
	case models.ExportFormatPDF:
		rendered, err = s.pdf.Render(data, "Reader Responses")
	default:
		rendered, err = s.csv.Render(data)
	}
	if err != nil {
		s.markFailed(ctx, jobID, err.Error())
		return err
	}

	filename := fmt.Sprintf("responses-%s.%s", jobID, record.Format)
	relPath, err := s.store.Save(filename, rendered)
	if err != nil {
		s.markFailed(ctx, jobID, err.Error())
		return err
	}
	if err := s.repo.MarkFinished(ctx, jobID, relPath); err != nil {
		// The artifact is unreachable without a FINISHED row; drop it.
		if derr := s.store.Delete(relPath); derr != nil {
			s.logger.Warn("failed to remove orphaned export artifact", zap.String("file", relPath), zap.Error(derr))
		}
		return err
	}
	s.logger.Info("export finished", zap.String("job_id", jobID), zap.String("file", relPath))
	return nil
}

func (s *ExportService) markFailed(ctx context.Context, jobID, message string) {
	if err := s.repo.MarkFailed(ctx, jobID, message); err != nil {
		s.logger.Warn("failed to mark export failed", zap.String("job_id", jobID), zap.Error(err))
	}
}

func buildResponseDataset(responses []models.CivicResponse) export.Dataset {
	data := export.Dataset{
		Headers: []string{"created_at", "message", "email", "article_title", "article_url"},
	}
	for _, r := range responses {
		data.Rows = append(data.Rows, map[string]string{
			"created_at":    r.CreatedAt.UTC().Format(time.RFC3339),
			"message":       r.Message,
			"email":         r.Email,
			"article_title": r.ArticleTitle,
			"article_url":   r.ArticleURL,
		})
	}
	return data
}
