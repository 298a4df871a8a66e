package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthStatus(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "ok", health.Checks["database"])
	assert.Equal(t, "test", health.Version)
}

func TestPing(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(router, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong"}`, w.Body.String())
}
