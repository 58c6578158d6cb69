package webui_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabviz/cabviz/internal/webui"
)

func newTestUI(t *testing.T) http.Handler {
	t.Helper()

	handler, err := webui.NewHandler("test")
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.Register(r)
	return r
}

func TestIndexPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	newTestUI(t).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "Cab Management System: Interactive Route Visualizer")
	assert.Contains(t, body, `id="scenario"`)
	assert.Contains(t, body, `src="/app.js"`)
	assert.Contains(t, body, "cabviz test")
}

func TestScript(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	w := httptest.NewRecorder()
	newTestUI(t).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/javascript")
	assert.Contains(t, w.Body.String(), "/v1/insertions:evaluate")
}
