package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planet-detroit/civic-action-api/internal/models"
	"github.com/planet-detroit/civic-action-api/internal/service"
	"github.com/planet-detroit/civic-action-api/pkg/jobs"
	"github.com/planet-detroit/civic-action-api/pkg/response"
	"github.com/planet-detroit/civic-action-api/pkg/storage"
)

type exportRepoMock struct {
	jobs map[string]*models.ExportJob
}

func newExportRepoMock() *exportRepoMock {
	return &exportRepoMock{jobs: map[string]*models.ExportJob{}}
}

func (m *exportRepoMock) Create(_ context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	m.jobs[job.ID] = job
	return nil
}

func (m *exportRepoMock) FindByID(_ context.Context, id string) (*models.ExportJob, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (m *exportRepoMock) MarkProcessing(_ context.Context, id string) error {
	m.jobs[id].Status = models.ExportStatusProcessing
	return nil
}

func (m *exportRepoMock) MarkFinished(_ context.Context, id, filePath string) error {
	m.jobs[id].Status = models.ExportStatusFinished
	m.jobs[id].FilePath = &filePath
	return nil
}

func (m *exportRepoMock) MarkFailed(_ context.Context, id, message string) error {
	m.jobs[id].Status = models.ExportStatusFailed
	return nil
}

type exportQueueMock struct {
	enqueued []jobs.Job
}

func (m *exportQueueMock) Enqueue(job jobs.Job) error {
	m.enqueued = append(m.enqueued, job)
	return nil
}

type responseReaderMock struct{}

func (responseReaderMock) ListAll(_ context.Context, _ string) ([]models.CivicResponse, error) {
	return []models.CivicResponse{{Message: "count me in", CreatedAt: time.Now()}}, nil
}

type exportFixture struct {
	router *gin.Engine
	repo   *exportRepoMock
	queue  *exportQueueMock
	svc    *service.ExportService
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := newExportRepoMock()
	queue := &exportQueueMock{}
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	svc := service.NewExportService(repo, responseReaderMock{}, queue, store, signer, nil, nil)
	handler := NewExportHandler(svc, store)
	router := gin.New()
	router.POST("/api/exports", handler.Create)
	router.GET("/api/exports/:id", handler.Get)
	router.GET("/api/exports/download", handler.Download)
	return &exportFixture{router: router, repo: repo, queue: queue, svc: svc}
}

func TestExportHandlerCreate(t *testing.T) {
	f := newExportFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/exports", bytes.NewReader([]byte(`{"format":"csv"}`)))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"QUEUED"`)
	assert.Len(t, f.queue.enqueued, 1)
}

func TestExportHandlerCreateBadFormat(t *testing.T) {
	f := newExportFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/exports", bytes.NewReader([]byte(`{"format":"xlsx"}`)))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHandlerGetUnknownJob(t *testing.T) {
	f := newExportFixture(t)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exports/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportHandlerDownloadRoundTrip(t *testing.T) {
	f := newExportFixture(t)

	// Queue the job through the API, then run the worker handler inline.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/exports", bytes.NewReader([]byte(`{"format":"csv"}`)))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, f.queue.enqueued, 1)

	require.NoError(t, f.svc.HandleJob(context.Background(), f.queue.enqueued[0]))

	jobID := f.queue.enqueued[0].Payload.(string)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exports/"+jobID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	downloadURL, ok := data["download_url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(downloadURL, "/api/exports/download?token="))

	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, downloadURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "count me in")
}

func TestExportHandlerDownloadRejectsMissingToken(t *testing.T) {
	f := newExportFixture(t)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exports/download", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
