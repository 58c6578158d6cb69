package insertion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabviz/cabviz/internal/insertion"
)

func TestEvaluate_PickupAfterDrop_NoOverhead(t *testing.T) {
	for _, base := range []float64{10, 17.5, 20, 42, 60} {
		eval := insertion.Evaluate(insertion.ScenarioPickupAfterDrop, insertion.TripParams{
			BaseTimeMinutes: base,
		})

		assert.Equal(t, base, eval.NewMinutes)
		assert.Equal(t, 0.0, eval.OverheadPercent)
		assert.True(t, eval.ConstraintMet)
		assert.Equal(t, insertion.ZoneOptimal, eval.Zone)
	}
}

func TestEvaluate_OnRouteDropAfter_FivePercent(t *testing.T) {
	for _, base := range []float64{10, 20, 33, 60} {
		eval := insertion.Evaluate(insertion.ScenarioOnRouteDropAfter, insertion.TripParams{
			BaseTimeMinutes: base,
		})

		assert.Equal(t, base*1.05, eval.NewMinutes)
		assert.True(t, eval.ConstraintMet)
		assert.Equal(t, insertion.ZoneAcceptable, eval.Zone)
	}
}

func TestEvaluate_OnRouteDropBefore_TenPercent(t *testing.T) {
	eval := insertion.Evaluate(insertion.ScenarioOnRouteDropBefore, insertion.TripParams{
		BaseTimeMinutes: 40,
	})

	assert.Equal(t, 40*1.10, eval.NewMinutes)
	assert.True(t, eval.ConstraintMet)
}

func TestEvaluate_DetourDropAfter_ScalesWithDetour(t *testing.T) {
	for _, detour := range []float64{5, 20, 35, 50} {
		eval := insertion.Evaluate(insertion.ScenarioDetourDropAfter, insertion.TripParams{
			BaseTimeMinutes: 30,
			DetourPercent:   detour,
		})

		assert.Equal(t, 30*(1+detour/100), eval.NewMinutes)
		assert.InDelta(t, detour, eval.OverheadPercent, 1e-9)
	}
}

func TestEvaluate_DoubleDetour_SumsDetours(t *testing.T) {
	for _, tc := range []struct {
		pickup, dropoff float64
	}{
		{5, 5},
		{15, 15},
		{30, 5},
		{30, 30},
	} {
		eval := insertion.Evaluate(insertion.ScenarioDoubleDetour, insertion.TripParams{
			BaseTimeMinutes:      20,
			PickupDetourPercent:  tc.pickup,
			DropoffDetourPercent: tc.dropoff,
		})

		assert.Equal(t, 20*(1+(tc.pickup+tc.dropoff)/100), eval.NewMinutes)
	}
}

func TestEvaluate_InertDetourParamsIgnored(t *testing.T) {
	// Detour values must not leak into scenarios that do not use them.
	params := insertion.TripParams{
		BaseTimeMinutes:      20,
		DetourPercent:        50,
		PickupDetourPercent:  30,
		DropoffDetourPercent: 30,
	}

	assert.Equal(t, 21.0, insertion.Evaluate(insertion.ScenarioOnRouteDropAfter, params).NewMinutes)
	assert.Equal(t, 22.0, insertion.Evaluate(insertion.ScenarioOnRouteDropBefore, params).NewMinutes)
	assert.Equal(t, 20.0, insertion.Evaluate(insertion.ScenarioPickupAfterDrop, params).NewMinutes)
}

func TestEvaluate_ConcreteSingleDetour(t *testing.T) {
	// base 20, detour 20% -> 24.0 minutes, 20% overhead, within 30.0 ceiling.
	eval := insertion.Evaluate(insertion.ScenarioDetourDropAfter, insertion.TripParams{
		BaseTimeMinutes: 20,
		DetourPercent:   20,
	})

	assert.Equal(t, 24.0, eval.NewMinutes)
	assert.InDelta(t, 20.0, eval.OverheadPercent, 1e-9)
	assert.Equal(t, 30.0, eval.MaxAllowedMinutes)
	assert.True(t, eval.ConstraintMet)
	assert.Equal(t, insertion.ZoneAcceptable, eval.Zone)
}

func TestEvaluate_ConcreteDoubleDetour(t *testing.T) {
	// base 20, detours 15+15 -> 26.0 minutes, passes (26 <= 30).
	eval := insertion.Evaluate(insertion.ScenarioDoubleDetour, insertion.TripParams{
		BaseTimeMinutes:      20,
		PickupDetourPercent:  15,
		DropoffDetourPercent: 15,
	})

	assert.Equal(t, 26.0, eval.NewMinutes)
	assert.True(t, eval.ConstraintMet)
}

func TestEvaluate_DoubleDetourExceedsCeiling(t *testing.T) {
	// base 20, detours 30+30 -> 32.0 minutes, violates (32 > 30).
	eval := insertion.Evaluate(insertion.ScenarioDoubleDetour, insertion.TripParams{
		BaseTimeMinutes:      20,
		PickupDetourPercent:  30,
		DropoffDetourPercent: 30,
	})

	assert.Equal(t, 32.0, eval.NewMinutes)
	assert.False(t, eval.ConstraintMet)
	assert.Equal(t, insertion.ZoneProhibited, eval.Zone)
}

func TestEvaluate_ConstraintBoundaryPasses(t *testing.T) {
	// Exactly 1.5x the base time must still pass.
	eval := insertion.Evaluate(insertion.ScenarioDetourDropAfter, insertion.TripParams{
		BaseTimeMinutes: 20,
		DetourPercent:   50,
	})

	require.Equal(t, 30.0, eval.NewMinutes)
	assert.True(t, eval.ConstraintMet)
	assert.Equal(t, insertion.ZoneAcceptable, eval.Zone)
}

func TestScenario_Valid(t *testing.T) {
	for _, s := range insertion.Scenarios() {
		assert.True(t, s.Valid(), "scenario %s", s)
	}
	assert.False(t, insertion.Scenario("B_TELEPORTS").Valid())
}
