package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cabviz/cabviz/internal/api/models"
	"github.com/cabviz/cabviz/internal/api/response"
	"github.com/cabviz/cabviz/internal/insertion"
)

// ScenarioHandler serves the scenario catalog.
type ScenarioHandler struct{}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

// ListScenarios handles GET /v1/scenarios.
func (h *ScenarioHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	entries := insertion.Catalog()
	list := models.ScenarioList{Items: make([]models.ScenarioSummary, 0, len(entries))}
	for _, entry := range entries {
		list.Items = append(list.Items, toSummary(entry))
	}
	response.JSON(w, r, http.StatusOK, list)
}

// GetScenario handles GET /v1/scenarios/{scenarioId}.
func (h *ScenarioHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scenarioId")
	entry, ok := insertion.Lookup(insertion.Scenario(id))
	if !ok {
		response.NotFound(w, r, "unknown scenario: "+id)
		return
	}
	response.JSON(w, r, http.StatusOK, toSummary(entry))
}

func toSummary(entry insertion.CatalogEntry) models.ScenarioSummary {
	params := make([]models.ParamSpec, 0, len(entry.Params))
	for _, p := range entry.Params {
		params = append(params, models.ParamSpec{
			Name:    p.Name,
			Label:   p.Label,
			Min:     p.Min,
			Max:     p.Max,
			Default: p.Default,
		})
	}

	return models.ScenarioSummary{
		ID:           string(entry.Scenario),
		CaseCode:     entry.CaseCode,
		Title:        entry.Title,
		Description:  entry.Description,
		PriorityRank: entry.PriorityRank,
		Params:       params,
	}
}
