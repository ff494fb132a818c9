package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	"github.com/planet-detroit/civic-action-api/pkg/jobs"
	"github.com/planet-detroit/civic-action-api/pkg/storage"
)

type stubExportRepo struct {
	jobs       map[string]*models.ExportJob
	processing []string
	finished   map[string]string
	failed     map[string]string
	finishErr  error
}

func newStubExportRepo() *stubExportRepo {
	return &stubExportRepo{
		jobs:     map[string]*models.ExportJob{},
		finished: map[string]string{},
		failed:   map[string]string{},
	}
}

func (s *stubExportRepo) Create(_ context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	s.jobs[job.ID] = job
	return nil
}

func (s *stubExportRepo) FindByID(_ context.Context, id string) (*models.ExportJob, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (s *stubExportRepo) MarkProcessing(_ context.Context, id string) error {
	s.processing = append(s.processing, id)
	s.jobs[id].Status = models.ExportStatusProcessing
	return nil
}

func (s *stubExportRepo) MarkFinished(_ context.Context, id, filePath string) error {
	if s.finishErr != nil {
		return s.finishErr
	}
	s.finished[id] = filePath
	s.jobs[id].Status = models.ExportStatusFinished
	s.jobs[id].FilePath = &filePath
	return nil
}

func (s *stubExportRepo) MarkFailed(_ context.Context, id, message string) error {
	s.failed[id] = message
	s.jobs[id].Status = models.ExportStatusFailed
	return nil
}

type stubExportQueue struct {
	enqueued []jobs.Job
}

func (s *stubExportQueue) Enqueue(job jobs.Job) error {
	s.enqueued = append(s.enqueued, job)
	return nil
}

type stubResponseReader struct {
	responses []models.CivicResponse
}

func (s *stubResponseReader) ListAll(_ context.Context, _ string) ([]models.CivicResponse, error) {
	return s.responses, nil
}

func newExportService(t *testing.T, repo *stubExportRepo, reader *stubResponseReader, queue *stubExportQueue) (*ExportService, *storage.LocalStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	return NewExportService(repo, reader, queue, store, signer, nil, nil), store
}

func TestExportServiceCreateEnqueuesJob(t *testing.T) {
	repo := newStubExportRepo()
	queue := &stubExportQueue{}
	svc, _ := newExportService(t, repo, &stubResponseReader{}, queue)

	job, err := svc.Create(context.Background(), dto.CreateExportRequest{Format: models.ExportFormatCSV})
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusQueued, job.Status)
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, "response_export", queue.enqueued[0].Type)
	assert.Equal(t, job.ID, queue.enqueued[0].Payload)
}

func TestExportServiceCreateRejectsUnknownFormat(t *testing.T) {
	svc, _ := newExportService(t, newStubExportRepo(), &stubResponseReader{}, &stubExportQueue{})

	_, err := svc.Create(context.Background(), dto.CreateExportRequest{Format: "xlsx"})
	assert.Error(t, err)
}

func TestExportServiceHandleJobRendersCSV(t *testing.T) {
	repo := newStubExportRepo()
	reader := &stubResponseReader{responses: []models.CivicResponse{
		{Message: "count me in", ArticleURL: "https://planetdetroit.org/a", CreatedAt: time.Now()},
	}}
	svc, store := newExportService(t, repo, reader, &stubExportQueue{})

	job, err := svc.Create(context.Background(), dto.CreateExportRequest{Format: models.ExportFormatCSV})
	require.NoError(t, err)

	require.NoError(t, svc.HandleJob(context.Background(), jobs.Job{ID: job.ID, Type: "response_export", Payload: job.ID}))

	relPath, ok := repo.finished[job.ID]
	require.True(t, ok)
	assert.Contains(t, repo.processing, job.ID)

	file, err := store.Open(relPath)
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "created_at,message,email,article_title,article_url"))
	assert.Contains(t, string(content), "count me in")
}

func TestExportServiceHandleJobDropsArtifactWhenFinishFails(t *testing.T) {
	repo := newStubExportRepo()
	repo.finishErr = errors.New("connection reset")
	reader := &stubResponseReader{responses: []models.CivicResponse{
		{Message: "count me in", ArticleURL: "https://planetdetroit.org/a", CreatedAt: time.Now()},
	}}
	svc, store := newExportService(t, repo, reader, &stubExportQueue{})

	job, err := svc.Create(context.Background(), dto.CreateExportRequest{Format: models.ExportFormatCSV})
	require.NoError(t, err)

	err = svc.HandleJob(context.Background(), jobs.Job{ID: job.ID, Type: "response_export", Payload: job.ID})
	require.Error(t, err)

	// The rendered file must not linger once the status update failed.
	_, err = store.Open(fmt.Sprintf("responses-%s.csv", job.ID))
	assert.Error(t, err)
}

func TestExportServiceGetSignsFinishedJob(t *testing.T) {
	repo := newStubExportRepo()
	svc, store := newExportService(t, repo, &stubResponseReader{}, &stubExportQueue{})

	relPath, err := store.Save("responses-x.csv", []byte("created_at\n"))
	require.NoError(t, err)
	repo.jobs["x"] = &models.ExportJob{ID: "x", Format: models.ExportFormatCSV, Status: models.ExportStatusFinished, FilePath: &relPath}

	job, err := svc.Get(context.Background(), "x")
	require.NoError(t, err)
	require.NotNil(t, job.DownloadURL)
	assert.True(t, strings.HasPrefix(*job.DownloadURL, "/api/exports/download?token="))

	token := strings.TrimPrefix(*job.DownloadURL, "/api/exports/download?token=")
	resolved, gotPath, err := svc.ResolveDownload(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "x", resolved.ID)
	assert.Equal(t, relPath, gotPath)
}

func TestExportServiceGetQueuedJobHasNoDownloadURL(t *testing.T) {
	repo := newStubExportRepo()
	repo.jobs["q"] = &models.ExportJob{ID: "q", Format: models.ExportFormatPDF, Status: models.ExportStatusQueued}
	svc, _ := newExportService(t, repo, &stubResponseReader{}, &stubExportQueue{})

	job, err := svc.Get(context.Background(), "q")
	require.NoError(t, err)
	assert.Nil(t, job.DownloadURL)
}

func TestExportServiceResolveDownloadRejectsGarbageToken(t *testing.T) {
	svc, _ := newExportService(t, newStubExportRepo(), &stubResponseReader{}, &stubExportQueue{})

	_, _, err := svc.ResolveDownload(context.Background(), "not-a-token")
	assert.Error(t, err)
}
