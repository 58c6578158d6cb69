package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cabviz/cabviz/internal/api/models"
	"github.com/cabviz/cabviz/internal/api/response"
	"github.com/cabviz/cabviz/internal/insertion"
)

// EvaluateHandler computes time overheads for insertion requests.
type EvaluateHandler struct{}

// NewEvaluateHandler creates a new EvaluateHandler.
func NewEvaluateHandler() *EvaluateHandler {
	return &EvaluateHandler{}
}

// Evaluate handles POST /v1/insertions:evaluate.
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var input models.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	entry, ok := insertion.Lookup(insertion.Scenario(input.ScenarioID))
	if !ok {
		response.BadRequest(w, r, "unknown scenario", []models.FieldError{
			{Field: "scenarioId", Message: "must be one of the catalog scenarios", Code: "UNKNOWN_SCENARIO"},
		})
		return
	}

	params, fieldErrors := buildTripParams(entry, map[string]*float64{
		insertion.ParamBaseTime:      input.BaseTimeMinutes,
		insertion.ParamDetour:        input.DetourPercent,
		insertion.ParamPickupDetour:  input.PickupDetourPercent,
		insertion.ParamDropoffDetour: input.DropoffDetourPercent,
	})
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid trip parameters", fieldErrors)
		return
	}

	eval := insertion.Evaluate(entry.Scenario, params)
	response.JSON(w, r, http.StatusOK, toEvaluationResponse(eval))
}

// buildTripParams validates the supplied values against the scenario's
// parameter definitions and assembles the trip parameters. Parameters the
// scenario does not declare are inert and never validated.
func buildTripParams(entry insertion.CatalogEntry, supplied map[string]*float64) (insertion.TripParams, []models.FieldError) {
	var params insertion.TripParams
	var fieldErrors []models.FieldError

	for _, def := range entry.Params {
		value := supplied[def.Name]
		if value == nil {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   def.Name,
				Message: "required for this scenario",
				Code:    "REQUIRED",
			})
			continue
		}
		if *value < def.Min || *value > def.Max {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   def.Name,
				Message: fmt.Sprintf("must be between %g and %g", def.Min, def.Max),
				Code:    "OUT_OF_RANGE",
			})
			continue
		}

		switch def.Name {
		case insertion.ParamBaseTime:
			params.BaseTimeMinutes = *value
		case insertion.ParamDetour:
			params.DetourPercent = *value
		case insertion.ParamPickupDetour:
			params.PickupDetourPercent = *value
		case insertion.ParamDropoffDetour:
			params.DropoffDetourPercent = *value
		}
	}

	return params, fieldErrors
}

func toEvaluationResponse(eval insertion.Evaluation) models.EvaluationResponse {
	var message string
	if eval.ConstraintMet {
		message = fmt.Sprintf("Time constraint met! T1 (%.1f min) <= 1.5 x T0 (%.1f min)",
			eval.NewMinutes, eval.MaxAllowedMinutes)
	} else {
		message = fmt.Sprintf("Time constraint violated! T1 (%.1f min) > 1.5 x T0 (%.1f min)",
			eval.NewMinutes, eval.MaxAllowedMinutes)
	}

	return models.EvaluationResponse{
		ScenarioID:        string(eval.Scenario),
		OriginalMinutes:   eval.OriginalMinutes,
		NewMinutes:        eval.NewMinutes,
		MaxAllowedMinutes: eval.MaxAllowedMinutes,
		OverheadPercent:   eval.OverheadPercent,
		ConstraintMet:     eval.ConstraintMet,
		Zone:              string(eval.Zone),
		Message:           message,
	}
}
