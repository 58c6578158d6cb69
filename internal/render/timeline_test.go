package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cabviz/cabviz/internal/insertion"
	"github.com/cabviz/cabviz/internal/render"
)

func renderTimeline(eval insertion.Evaluation) string {
	var buf bytes.Buffer
	render.Timeline(&buf, eval)
	return buf.String()
}

func TestTimeline_ZonesAndMarkers(t *testing.T) {
	eval := insertion.Evaluate(insertion.ScenarioDetourDropAfter, insertion.TripParams{
		BaseTimeMinutes: 20,
		DetourPercent:   20,
	})

	out := renderTimeline(eval)

	assert.Contains(t, out, "Optimal")
	assert.Contains(t, out, "Acceptable")
	assert.Contains(t, out, "Prohibited")
	assert.Contains(t, out, "T0")
	assert.Contains(t, out, "1.5 x T0")
	assert.Contains(t, out, "Travel Time (minutes)")
}

func TestTimeline_CurrentLabelOneDecimal(t *testing.T) {
	eval := insertion.Evaluate(insertion.ScenarioOnRouteDropAfter, insertion.TripParams{
		BaseTimeMinutes: 21,
	})

	// 21 * 1.05 = 22.05, displayed to one decimal place.
	out := renderTimeline(eval)
	assert.Contains(t, out, "Current: 22.1 min")
}

func TestTimeline_ProhibitedResultStillRenders(t *testing.T) {
	eval := insertion.Evaluate(insertion.ScenarioDoubleDetour, insertion.TripParams{
		BaseTimeMinutes:      20,
		PickupDetourPercent:  30,
		DropoffDetourPercent: 30,
	})

	out := renderTimeline(eval)
	assert.Contains(t, out, "Current: 32.0 min")
	assert.Contains(t, out, "</svg>")
}
