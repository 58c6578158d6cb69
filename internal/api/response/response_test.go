package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabviz/cabviz/internal/api/models"
	"github.com/cabviz/cabviz/internal/api/response"
)

func TestJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	response.JSON(w, req, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestSVG(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	out := response.SVG(w, req)
	_, err := out.Write([]byte("<svg></svg>"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("Cache-Control"))
	assert.Equal(t, "<svg></svg>", w.Body.String())
}

func TestBadRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/insertions:evaluate", nil)
	w := httptest.NewRecorder()

	response.BadRequest(w, req, "invalid trip parameters", []models.FieldError{
		{Field: "baseTimeMinutes", Message: "required for this scenario", Code: "REQUIRED"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	assert.Equal(t, "/v1/insertions:evaluate", problem.Instance)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "baseTimeMinutes", problem.Errors[0].Field)
}

func TestNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/scenarios/NOPE", nil)
	w := httptest.NewRecorder()

	response.NotFound(w, req, "unknown scenario: NOPE")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeNotFound, problem.Type)
	assert.Equal(t, "unknown scenario: NOPE", problem.Detail)
}
