package insertion

// Evaluate computes the time overhead of inserting B into A's trip for the
// given scenario. It is pure and total: every parameter set inside the
// catalog ranges is valid and no error path exists. Detour percentages are
// read only by the scenarios that use them.
func Evaluate(s Scenario, p TripParams) Evaluation {
	base := p.BaseTimeMinutes

	var newTime float64
	switch s {
	case ScenarioOnRouteDropAfter:
		// Minimal overhead, just the stop to pick up B.
		newTime = base * 1.05
	case ScenarioDetourDropAfter:
		newTime = base * (1 + p.DetourPercent/100)
	case ScenarioOnRouteDropBefore:
		// Two extra stops, no detours.
		newTime = base * 1.10
	case ScenarioDoubleDetour:
		newTime = base * (1 + (p.PickupDetourPercent+p.DropoffDetourPercent)/100)
	case ScenarioPickupAfterDrop:
		// No impact on A at all.
		newTime = base
	default:
		newTime = base
	}

	maxAllowed := base * MaxOverheadFactor

	return Evaluation{
		Scenario:          s,
		OriginalMinutes:   base,
		NewMinutes:        newTime,
		MaxAllowedMinutes: maxAllowed,
		OverheadPercent:   (newTime/base - 1) * 100,
		ConstraintMet:     newTime <= maxAllowed,
		Zone:              classify(newTime, base),
	}
}

// classify places the new travel time into the optimal/acceptable/prohibited
// band used by the timeline rendering.
func classify(newTime, base float64) Zone {
	switch {
	case newTime <= base:
		return ZoneOptimal
	case newTime <= base*MaxOverheadFactor:
		return ZoneAcceptable
	default:
		return ZoneProhibited
	}
}
