// Package insertion models the second-passenger insertion scenarios and the
// time-overhead policy applied to them.
package insertion

// Scenario identifies one of the five qualitative pickup/dropoff
// configurations for a second passenger relative to the first passenger's
// committed route.
type Scenario string

const (
	// ScenarioOnRouteDropAfter is case 1.1: B sits on the direct route and is
	// dropped off after A.
	ScenarioOnRouteDropAfter Scenario = "B_ON_ROUTE_DROP_AFTER_A"

	// ScenarioDetourDropAfter is case 1.2: picking up B requires a detour, B
	// is dropped off after A.
	ScenarioDetourDropAfter Scenario = "B_DETOUR_DROP_AFTER_A"

	// ScenarioOnRouteDropBefore is case 2.1: both B and Db sit on the direct
	// route before A's dropoff.
	ScenarioOnRouteDropBefore Scenario = "B_ON_ROUTE_DROP_BEFORE_A"

	// ScenarioDoubleDetour is case 2.2: both B's pickup and dropoff require
	// detours before A's dropoff.
	ScenarioDoubleDetour Scenario = "B_DOUBLE_DETOUR_BEFORE_A"

	// ScenarioPickupAfterDrop is case 3: B is picked up only after A has been
	// dropped off.
	ScenarioPickupAfterDrop Scenario = "B_PICKUP_AFTER_A_DROP"
)

// Scenarios returns all scenarios in catalog (case code) order.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioOnRouteDropAfter,
		ScenarioDetourDropAfter,
		ScenarioOnRouteDropBefore,
		ScenarioDoubleDetour,
		ScenarioPickupAfterDrop,
	}
}

// Valid reports whether s is one of the five known scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioOnRouteDropAfter, ScenarioDetourDropAfter,
		ScenarioOnRouteDropBefore, ScenarioDoubleDetour, ScenarioPickupAfterDrop:
		return true
	}
	return false
}

// TripParams are the user-supplied inputs for one evaluation. Detour
// percentages are inert (treated as zero) for scenarios that ignore them.
type TripParams struct {
	// BaseTimeMinutes is A's travel time absent a second passenger (T₀).
	BaseTimeMinutes float64

	// DetourPercent is the single pickup detour size for case 1.2, as a
	// percentage of the direct route.
	DetourPercent float64

	// PickupDetourPercent and DropoffDetourPercent are the two detour sizes
	// for case 2.2.
	PickupDetourPercent  float64
	DropoffDetourPercent float64
}

// MaxOverheadFactor is the policy ceiling: an insertion must not push A's
// travel time beyond this multiple of the base time.
const MaxOverheadFactor = 1.5

// Zone classifies where an evaluated travel time lands relative to the base
// time and the policy ceiling.
type Zone string

const (
	ZoneOptimal    Zone = "OPTIMAL"    // new time ≤ T₀
	ZoneAcceptable Zone = "ACCEPTABLE" // T₀ < new time ≤ 1.5×T₀
	ZoneProhibited Zone = "PROHIBITED" // new time > 1.5×T₀
)

// Evaluation is the derived result for one scenario and parameter set.
// Values are unrounded; presentation layers format to one decimal place.
type Evaluation struct {
	Scenario Scenario

	// OriginalMinutes echoes the base time (T₀).
	OriginalMinutes float64

	// NewMinutes is A's travel time with B inserted (T₁).
	NewMinutes float64

	// MaxAllowedMinutes is the policy ceiling, 1.5×T₀.
	MaxAllowedMinutes float64

	// OverheadPercent is (T₁/T₀ − 1) × 100.
	OverheadPercent float64

	// ConstraintMet is true when T₁ ≤ 1.5×T₀. The boundary case passes.
	ConstraintMet bool

	Zone Zone
}
