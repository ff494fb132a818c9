package handler

import (
	"bytes"
	"context"
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

type responseRepoMock struct {
	created []*models.CivicResponse
	filter  models.ResponseFilter
}

func (m *responseRepoMock) Create(_ context.Context, response *models.CivicResponse) error {
	response.ID = "resp-1"
	response.CreatedAt = time.Now()
	m.created = append(m.created, response)
	return nil
}

func (m *responseRepoMock) List(_ context.Context, filter models.ResponseFilter) ([]models.CivicResponse, int, error) {
	m.filter = filter
	return []models.CivicResponse{{ID: "resp-1", Message: "count me in"}}, 1, nil
}

func newResponseRouter() (*gin.Engine, *responseRepoMock) {
	gin.SetMode(gin.TestMode)
	repo := &responseRepoMock{}
	handler := NewResponseHandler(service.NewResponseService(repo, nil, nil), nil)
	router := gin.New()
	router.POST("/api/civic-responses", handler.Create)
	router.GET("/api/civic-responses", handler.List)
	return router, repo
}

func TestResponseHandlerCreate(t *testing.T) {
	router, repo := newResponseRouter()

	body := []byte(`{"message":"count me in","article_url":"https://planetdetroit.org/2025/06/dte-rate-case"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/civic-responses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "count me in", repo.created[0].Message)
}

func TestResponseHandlerCreateMissingMessage(t *testing.T) {
	router, repo := newResponseRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/civic-responses", bytes.NewReader([]byte(`{"email":"x@example.com"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}

func TestResponseHandlerList(t *testing.T) {
	router, repo := newResponseRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/civic-responses?article_url=https://planetdetroit.org/a&page=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://planetdetroit.org/a", repo.filter.ArticleURL)
	assert.Equal(t, 3, repo.filter.Page)
	assert.Contains(t, w.Body.String(), "count me in")
}
