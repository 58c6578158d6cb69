package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cabviz/cabviz/internal/api/models"
	"github.com/cabviz/cabviz/internal/api/response"
	"github.com/cabviz/cabviz/internal/insertion"
	"github.com/cabviz/cabviz/internal/render"
	"github.com/cabviz/cabviz/internal/scene"
)

// DiagramHandler renders the scenario diagrams as SVG.
type DiagramHandler struct{}

// NewDiagramHandler creates a new DiagramHandler.
func NewDiagramHandler() *DiagramHandler {
	return &DiagramHandler{}
}

// RouteDiagram handles GET /v1/scenarios/{scenarioId}/diagram. The drawing is
// fixed per scenario; trip parameters play no part in it.
func (h *DiagramHandler) RouteDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scenarioId")
	diagram, ok := scene.ForScenario(insertion.Scenario(id))
	if !ok {
		response.NotFound(w, r, "unknown scenario: "+id)
		return
	}

	render.RouteDiagram(response.SVG(w, r), diagram)
}

// Timeline handles GET /v1/scenarios/{scenarioId}/timeline. Trip parameters
// arrive as query values, validated against the same catalog ranges as the
// evaluate endpoint.
func (h *DiagramHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scenarioId")
	entry, ok := insertion.Lookup(insertion.Scenario(id))
	if !ok {
		response.NotFound(w, r, "unknown scenario: "+id)
		return
	}

	supplied, fieldErrors := parseQueryParams(r, entry)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid trip parameters", fieldErrors)
		return
	}

	params, fieldErrors := buildTripParams(entry, supplied)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid trip parameters", fieldErrors)
		return
	}

	eval := insertion.Evaluate(entry.Scenario, params)
	render.Timeline(response.SVG(w, r), eval)
}

// parseQueryParams reads the scenario's declared parameters from the query
// string. Absent values stay nil so the shared validation reports them as
// missing; malformed numbers are reported here.
func parseQueryParams(r *http.Request, entry insertion.CatalogEntry) (map[string]*float64, []models.FieldError) {
	supplied := make(map[string]*float64, len(entry.Params))
	var fieldErrors []models.FieldError

	query := r.URL.Query()
	for _, def := range entry.Params {
		raw := query.Get(def.Name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   def.Name,
				Message: "must be a number",
				Code:    "NOT_A_NUMBER",
			})
			continue
		}
		supplied[def.Name] = &value
	}

	return supplied, fieldErrors
}
