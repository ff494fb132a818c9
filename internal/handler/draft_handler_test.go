package handler

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planet-detroit/civic-action-api/internal/models"
	"github.com/planet-detroit/civic-action-api/internal/service"
)

type draftRepoMock struct {
	drafts map[string]*models.Draft
}

func newDraftRepoMock() *draftRepoMock {
	return &draftRepoMock{drafts: map[string]*models.Draft{}}
}

func (m *draftRepoMock) Find(_ context.Context, key string) (*models.Draft, error) {
	draft, ok := m.drafts[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return draft, nil
}

func (m *draftRepoMock) Upsert(_ context.Context, draft *models.Draft) error {
	m.drafts[draft.Key] = draft
	return nil
}

func (m *draftRepoMock) Delete(_ context.Context, key string) error {
	delete(m.drafts, key)
	return nil
}

func (m *draftRepoMock) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func newDraftRouter() (*gin.Engine, *draftRepoMock) {
	gin.SetMode(gin.TestMode)
	repo := newDraftRepoMock()
	handler := NewDraftHandler(service.NewDraftService(repo, time.Hour, nil, nil))
	router := gin.New()
	router.GET("/api/draft", handler.Get)
	router.PUT("/api/draft", handler.Save)
	router.DELETE("/api/draft", handler.Delete)
	return router, repo
}

func TestDraftHandlerSaveAndGet(t *testing.T) {
	router, _ := newDraftRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/draft?key=dte-rate-case", bytes.NewReader([]byte(`{"payload":{"meetings":[]}}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/draft?key=dte-rate-case", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"dte-rate-case"`)
	assert.Contains(t, w.Body.String(), `"meetings":[]`)
}

func TestDraftHandlerRequiresKey(t *testing.T) {
	router, _ := newDraftRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/draft", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraftHandlerGetMissing(t *testing.T) {
	router, _ := newDraftRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/draft?key=missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftHandlerDelete(t *testing.T) {
	router, repo := newDraftRouter()
	repo.drafts["gone"] = &models.Draft{Key: "gone", ExpiresAt: time.Now().Add(time.Hour)}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/draft?key=gone", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.drafts)
}
