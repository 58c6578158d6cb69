package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabviz/cabviz/internal/insertion"
	"github.com/cabviz/cabviz/internal/render"
	"github.com/cabviz/cabviz/internal/scene"
)

func renderDiagram(t *testing.T, s insertion.Scenario) string {
	t.Helper()
	d, ok := scene.ForScenario(s)
	require.True(t, ok)

	var buf bytes.Buffer
	render.RouteDiagram(&buf, d)
	return buf.String()
}

func TestRouteDiagram_WellFormed(t *testing.T) {
	for _, s := range insertion.Scenarios() {
		out := renderDiagram(t, s)

		assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
		assert.Contains(t, out, "<svg")
		assert.Contains(t, out, "</svg>")

		// All four actors are labeled.
		for _, name := range []string{">A<", ">Da<", ">B<", ">Db<"} {
			assert.Contains(t, out, name, "scenario %s", s)
		}

		// Legend basics.
		assert.Contains(t, out, "Pickup Point")
		assert.Contains(t, out, "Dropoff Point")
		assert.Contains(t, out, "Direct Route")
	}
}

func TestRouteDiagram_DetourLegendOnlyForDetourScenarios(t *testing.T) {
	withDetour := map[insertion.Scenario]bool{
		insertion.ScenarioDetourDropAfter: true,
		insertion.ScenarioDoubleDetour:    true,
	}

	for _, s := range insertion.Scenarios() {
		out := renderDiagram(t, s)
		assert.Equal(t, withDetour[s], strings.Contains(out, "Route with Detour"),
			"scenario %s", s)
		assert.Equal(t, withDetour[s], strings.Contains(out, "#2196F3"),
			"scenario %s", s)
	}
}

func TestRouteDiagram_IgnoresTripParameters(t *testing.T) {
	// The scene lookup takes only the scenario, so the rendered bytes are
	// identical no matter what parameters were evaluated.
	first := renderDiagram(t, insertion.ScenarioDetourDropAfter)
	second := renderDiagram(t, insertion.ScenarioDetourDropAfter)
	assert.Equal(t, first, second)
}

func TestRouteDiagram_Title(t *testing.T) {
	out := renderDiagram(t, insertion.ScenarioDoubleDetour)
	assert.Contains(t, out, "Case 2.2")
}
