package models

// Enums lists the enumerated values used by the API.
type Enums struct {
	Scenarios []string `json:"scenarios"`
	Zones     []string `json:"zones"`
}

// PriorityRanking is the static ranking of insertion opportunities plus the
// operational notes block. Both are literal content keyed off no input.
type PriorityRanking struct {
	Ranking             []string `json:"ranking"`
	ImplementationNotes []string `json:"implementationNotes"`
}
