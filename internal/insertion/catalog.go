package insertion

// Slider ranges imposed by the UI. The time model itself does not enforce
// them; the API edge validates requests against the catalog's ParamDefs.
const (
	BaseTimeMin = 10.0
	BaseTimeMax = 60.0

	SingleDetourMin = 5.0
	SingleDetourMax = 50.0

	DoubleDetourMin = 5.0
	DoubleDetourMax = 30.0
)

// Parameter names as they appear in API requests.
const (
	ParamBaseTime      = "baseTimeMinutes"
	ParamDetour        = "detourPercent"
	ParamPickupDetour  = "pickupDetourPercent"
	ParamDropoffDetour = "dropoffDetourPercent"
)

// ParamDef describes one user-adjustable input: its request field name,
// slider label, inclusive range, and default value.
type ParamDef struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Default float64
}

// CatalogEntry is the static description of one scenario. Entries never vary
// with trip parameters.
type CatalogEntry struct {
	Scenario Scenario

	// CaseCode is the short case label from the scenario taxonomy
	// ("1.1", "1.2", "2.1", "2.2", "3").
	CaseCode string

	Title string

	// Description bullets shown alongside the diagram.
	Description []string

	// PriorityRank is the qualitative rank text for the scenario.
	PriorityRank string

	// Params lists the adjustable inputs for the scenario, base time first.
	Params []ParamDef
}

var baseTimeParam = ParamDef{
	Name:    ParamBaseTime,
	Label:   "Original journey time (minutes)",
	Min:     BaseTimeMin,
	Max:     BaseTimeMax,
	Default: 20,
}

var catalog = map[Scenario]CatalogEntry{
	ScenarioOnRouteDropAfter: {
		Scenario: ScenarioOnRouteDropAfter,
		CaseCode: "1.1",
		Title:    "Case 1.1: B on direct route, dropoff after A",
		Description: []string{
			"Customer B is picked up from a point that lies directly on the optimal route from A to Da",
			"B's destination is after A's dropoff point",
			"Impact on A's travel time is minimal (just the brief stop to pick up B)",
			"This is one of the most efficient scenarios for ride-sharing",
		},
		PriorityRank: "2 (Very High)",
		Params:       []ParamDef{baseTimeParam},
	},
	ScenarioDetourDropAfter: {
		Scenario: ScenarioDetourDropAfter,
		CaseCode: "1.2",
		Title:    "Case 1.2: B requires detour, dropoff after A",
		Description: []string{
			"Customer B is picked up from a point that requires a detour from the direct route",
			"B's destination is after A's dropoff point",
			"Impact on A's travel time depends on the size of the detour",
			"The cab must leave the optimal route, pick up B, then return to the route",
		},
		PriorityRank: "4-6 (Medium to Low, depending on detour size)",
		Params: []ParamDef{
			baseTimeParam,
			{
				Name:    ParamDetour,
				Label:   "Detour size (% of direct route)",
				Min:     SingleDetourMin,
				Max:     SingleDetourMax,
				Default: 20,
			},
		},
	},
	ScenarioOnRouteDropBefore: {
		Scenario: ScenarioOnRouteDropBefore,
		CaseCode: "2.1",
		Title:    "Case 2.1: B and Db on direct route before A's dropoff",
		Description: []string{
			"Both customer B and their destination lie directly on the optimal route from A to Da",
			"B is dropped off before reaching A's destination",
			"Impact on A's travel time comes from two stops (pickup and dropoff)",
			"No detours are required, maintaining route efficiency",
		},
		PriorityRank: "3 (High)",
		Params:       []ParamDef{baseTimeParam},
	},
	ScenarioDoubleDetour: {
		Scenario: ScenarioDoubleDetour,
		CaseCode: "2.2",
		Title:    "Case 2.2: B and Db require detours before A's dropoff",
		Description: []string{
			"Both B's pickup and dropoff require deviations from the optimal route",
			"The cab must make multiple detours before reaching A's destination",
			"Highest impact on A's travel time among the valid scenarios",
			"Most complex routing with potentially significant delays",
		},
		PriorityRank: "5-7 (Low, depending on detour sizes)",
		Params: []ParamDef{
			baseTimeParam,
			{
				Name:    ParamPickupDetour,
				Label:   "Pickup detour size (%)",
				Min:     DoubleDetourMin,
				Max:     DoubleDetourMax,
				Default: 15,
			},
			{
				Name:    ParamDropoffDetour,
				Label:   "Dropoff detour size (%)",
				Min:     DoubleDetourMin,
				Max:     DoubleDetourMax,
				Default: 15,
			},
		},
	},
	ScenarioPickupAfterDrop: {
		Scenario: ScenarioPickupAfterDrop,
		CaseCode: "3",
		Title:    "Case 3: B's pickup after A's dropoff",
		Description: []string{
			"Customer B is picked up only after A has been dropped off",
			"No impact whatsoever on A's travel time",
			"Essentially two separate, sequential rides",
			"Most favorable scenario from A's perspective",
		},
		PriorityRank: "1 (Highest)",
		Params:       []ParamDef{baseTimeParam},
	},
}

// Lookup returns the catalog entry for a scenario.
func Lookup(s Scenario) (CatalogEntry, bool) {
	entry, ok := catalog[s]
	return entry, ok
}

// Catalog returns all entries in case code order.
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(catalog))
	for _, s := range Scenarios() {
		entries = append(entries, catalog[s])
	}
	return entries
}

// PriorityRanking is the complete ranking of insertion opportunities, best
// first. The bucket boundaries ("<25%", "25-50%") are literal product copy
// and are intentionally not derived from the scenario formulas.
func PriorityRanking() []string {
	return []string{
		"Case 3: B's pickup after A's dropoff (No impact on A)",
		"Case 1.1: B on direct route, dropoff after A (Minimal impact)",
		"Case 2.1: Both B and Db on direct route (Impact from two stops only)",
		"Case 1.2 (small detour): B requires minor detour (Time increase <25%)",
		"Case 2.2 (small detours): B/Db with minor detours (Time increase <25%)",
		"Case 1.2 (medium/large): B requires significant detour (25-50% increase)",
		"Case 2.2 (medium/large): Complex route with multiple significant detours (25-50%)",
	}
}

// ImplementationNotes are the operational considerations shown below the
// ranking.
func ImplementationNotes() []string {
	return []string{
		"Real-time Traffic Integration: Adjust time estimates based on current traffic conditions",
		"Dynamic Constraint Management: Tighten constraints during peak hours (e.g., 1.3x instead of 1.5x)",
		"Continuous Route Optimization: Recalculate routes as traffic conditions change",
		"Customer Communication: Keep both customers informed of estimated arrival times",
		"Incentive Structure: Offer discounts to customers accepting shared rides with potential delays",
	}
}
