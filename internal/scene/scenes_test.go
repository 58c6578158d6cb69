package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabviz/cabviz/internal/insertion"
	"github.com/cabviz/cabviz/internal/scene"
)

func TestForScenario_AllScenariosHaveDiagrams(t *testing.T) {
	for _, s := range insertion.Scenarios() {
		d, ok := scene.ForScenario(s)
		require.True(t, ok, "missing diagram for %s", s)

		assert.Equal(t, s, d.Scenario)
		assert.NotEmpty(t, d.Title)

		// Every diagram names the four actors exactly once.
		names := map[string]int{}
		for _, m := range d.Markers {
			names[m.Name]++
			assert.GreaterOrEqual(t, m.At.X, 0.0)
			assert.LessOrEqual(t, m.At.X, scene.PlotWidth)
			assert.GreaterOrEqual(t, m.At.Y, 0.0)
			assert.LessOrEqual(t, m.At.Y, scene.PlotHeight)
		}
		assert.Equal(t, map[string]int{"A": 1, "Da": 1, "B": 1, "Db": 1}, names)

		require.NotEmpty(t, d.Paths)
		for _, p := range d.Paths {
			assert.GreaterOrEqual(t, len(p.Points), 2)
		}
	}
}

func TestForScenario_SharedEndpoints(t *testing.T) {
	// A and Da are pinned to the same spots in every scenario.
	for _, s := range insertion.Scenarios() {
		d, _ := scene.ForScenario(s)
		for _, m := range d.Markers {
			switch m.Name {
			case "A":
				assert.Equal(t, scene.Point{X: 1, Y: 3}, m.At)
				assert.Equal(t, scene.MarkerPickup, m.Kind)
			case "Da":
				assert.Equal(t, scene.Point{X: 9, Y: 3}, m.At)
				assert.Equal(t, scene.MarkerDropoff, m.Kind)
			}
		}
	}
}

func TestForScenario_DetourScenariosCarryReferenceLine(t *testing.T) {
	detourScenarios := map[insertion.Scenario]bool{
		insertion.ScenarioDetourDropAfter: true,
		insertion.ScenarioDoubleDetour:    true,
	}

	for _, s := range insertion.Scenarios() {
		d, _ := scene.ForScenario(s)
		assert.Equal(t, detourScenarios[s], d.HasDetour(), "scenario %s", s)

		hasReference := false
		for _, p := range d.Paths {
			if p.Kind == scene.PathReference {
				hasReference = true
				assert.Equal(t, []scene.Point{{X: 1, Y: 3}, {X: 9, Y: 3}}, p.Points)
			}
		}
		assert.Equal(t, detourScenarios[s], hasReference, "scenario %s", s)
	}
}

func TestForScenario_DoubleDetourPath(t *testing.T) {
	d, ok := scene.ForScenario(insertion.ScenarioDoubleDetour)
	require.True(t, ok)

	var detour scene.Path
	for _, p := range d.Paths {
		if p.Kind == scene.PathDetour {
			detour = p
		}
	}

	assert.Equal(t, []scene.Point{
		{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 2.5, Y: 5}, {X: 3, Y: 3},
		{X: 5, Y: 3}, {X: 6, Y: 1}, {X: 7, Y: 3}, {X: 9, Y: 3},
	}, detour.Points)
}

func TestForScenario_Unknown(t *testing.T) {
	_, ok := scene.ForScenario(insertion.Scenario("UNKNOWN"))
	assert.False(t, ok)
}
