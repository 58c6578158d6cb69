package handler

import (
	"net/http"

	"github.com/cabviz/cabviz/internal/api/models"
	"github.com/cabviz/cabviz/internal/api/response"
	"github.com/cabviz/cabviz/internal/insertion"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetEnums handles GET /v1/metadata/enums.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	scenarios := make([]string, 0, 5)
	for _, s := range insertion.Scenarios() {
		scenarios = append(scenarios, string(s))
	}

	response.JSON(w, r, http.StatusOK, models.Enums{
		Scenarios: scenarios,
		Zones: []string{
			string(insertion.ZoneOptimal),
			string(insertion.ZoneAcceptable),
			string(insertion.ZoneProhibited),
		},
	})
}

// GetPriorityRanking handles GET /v1/metadata/priority-ranking.
func (h *MetadataHandler) GetPriorityRanking(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.PriorityRanking{
		Ranking:             insertion.PriorityRanking(),
		ImplementationNotes: insertion.ImplementationNotes(),
	})
}
