package models

// ParamSpec describes one adjustable input for a scenario, including the
// slider range enforced at the API edge.
type ParamSpec struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// ScenarioSummary is one catalog entry as served by the API.
type ScenarioSummary struct {
	ID           string      `json:"id"`
	CaseCode     string      `json:"caseCode"`
	Title        string      `json:"title"`
	Description  []string    `json:"description"`
	PriorityRank string      `json:"priorityRank"`
	Params       []ParamSpec `json:"params"`
}

// ScenarioList is the response for the scenario catalog.
type ScenarioList struct {
	Items []ScenarioSummary `json:"items"`
}

// EvaluateRequest is the body of POST /v1/insertions:evaluate. Detour fields
// are pointers so that a missing required parameter is distinguishable from
// an explicit zero.
type EvaluateRequest struct {
	ScenarioID           string   `json:"scenarioId"`
	BaseTimeMinutes      *float64 `json:"baseTimeMinutes"`
	DetourPercent        *float64 `json:"detourPercent,omitempty"`
	PickupDetourPercent  *float64 `json:"pickupDetourPercent,omitempty"`
	DropoffDetourPercent *float64 `json:"dropoffDetourPercent,omitempty"`
}

// EvaluationResponse is the evaluated time overhead and constraint outcome.
// Minute and percent values are unrounded; clients format for display.
type EvaluationResponse struct {
	ScenarioID        string  `json:"scenarioId"`
	OriginalMinutes   float64 `json:"originalMinutes"`
	NewMinutes        float64 `json:"newMinutes"`
	MaxAllowedMinutes float64 `json:"maxAllowedMinutes"`
	OverheadPercent   float64 `json:"overheadPercent"`
	ConstraintMet     bool    `json:"constraintMet"`
	Zone              string  `json:"zone"`

	// Message is the human-readable constraint verdict shown in the UI.
	Message string `json:"message"`
}
