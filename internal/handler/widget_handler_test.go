package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planet-detroit/civic-action-api/internal/service"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

func TestWidgetHandlerGenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewWidgetHandler(service.NewWidgetService(true, nil), nil)
	router := gin.New()
	router.POST("/api/generate", handler.Generate)

	payload := map[string]interface{}{
		"why_it_matters": "DTE is asking for a rate increase.",
		"meetings": []map[string]string{
			{"id": "m1", "title": "MPSC Hearing", "agency": "MPSC", "start_datetime": "2025-07-01T18:00:00"},
		},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	html := data["html"].(string)
	script := data["script"].(string)
	assert.Contains(t, html, "Civic Action Toolbox")
	assert.Contains(t, html, "MPSC Hearing")
	assert.Contains(t, script, "civic-response-submit")
}

func TestWidgetHandlerGenerateLabelsMetricByEffectiveMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	// Checkboxes default off; an omitted flag must count as static.
	handler := NewWidgetHandler(service.NewWidgetService(false, nil), metrics)
	router := gin.New()
	router.POST("/api/generate", handler.Generate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader([]byte(`{"why_it_matters":"rates"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, false, data["interactive"])

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `widgets_generated_total{interactive="false"} 1`)
}

func TestWidgetHandlerGenerateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewWidgetHandler(service.NewWidgetService(true, nil), nil)
	router := gin.New()
	router.POST("/api/generate", handler.Generate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
