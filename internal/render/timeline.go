package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/cabviz/cabviz/internal/insertion"
)

// Timeline zone fills, matching the zone classification.
const (
	colorOptimal    = "#a5d6a7"
	colorAcceptable = "#fff9c4"
	colorProhibited = "#ffcdd2"
	colorCurrent    = "#1565C0"
)

// Timeline layout in pixels. The bar spans [0, 2×T₀] so the prohibited band
// is always visible; the worst reachable time is 1.6×T₀, which fits.
const (
	timelineWidth  = 720
	timelineHeight = 190

	barLeft   = 40
	barRight  = timelineWidth - 40
	barTop    = 46
	barBottom = 126
)

// Timeline writes the one-dimensional constraint visualization for an
// evaluation: the three policy zones, reference marks at T₀ and 1.5×T₀, and
// a marker at the current travel time (labeled to one decimal place).
func Timeline(w io.Writer, eval insertion.Evaluation) {
	base := eval.OriginalMinutes
	span := base * 2

	// timeX maps minutes onto the bar.
	timeX := func(minutes float64) int {
		return barLeft + px((minutes/span)*float64(barRight-barLeft))
	}

	canvas := svg.New(w)
	canvas.Start(timelineWidth, timelineHeight)
	canvas.Rect(0, 0, timelineWidth, timelineHeight, "fill:#ffffff")

	barHeight := barBottom - barTop
	zone := func(from, to float64, fill string) {
		canvas.Rect(timeX(from), barTop, timeX(to)-timeX(from), barHeight,
			"fill:"+fill+";fill-opacity:0.5")
	}
	zone(0, base, colorOptimal)
	zone(base, base*insertion.MaxOverheadFactor, colorAcceptable)
	zone(base*insertion.MaxOverheadFactor, span, colorProhibited)

	midY := barTop + barHeight/2 + 5
	label := func(minutes float64, text string) {
		canvas.Text(timeX(minutes), midY, text,
			"text-anchor:middle;font-size:14px;font-family:sans-serif")
	}
	label(base*0.5, "Optimal")
	label(base*1.25, "Acceptable")
	label(base*1.75, "Prohibited")

	// Reference lines: base time in black, the policy ceiling in red.
	canvas.Line(timeX(base), barTop, timeX(base), barBottom,
		"stroke:#000000;stroke-width:2")
	canvas.Line(timeX(eval.MaxAllowedMinutes), barTop, timeX(eval.MaxAllowedMinutes), barBottom,
		"stroke:#d32f2f;stroke-width:2")

	// Reference markers on the lower band.
	refY := barBottom - barHeight/4
	canvas.Circle(timeX(base), refY, 6, "fill:#000000")
	canvas.Text(timeX(base), barBottom+18, "T0",
		"text-anchor:middle;font-size:13px;font-family:sans-serif")

	canvas.Circle(timeX(eval.MaxAllowedMinutes), refY, 6, "fill:#d32f2f")
	canvas.Text(timeX(eval.MaxAllowedMinutes), barBottom+18, "1.5 x T0",
		"text-anchor:middle;font-size:13px;font-family:sans-serif")

	// Current travel time on the upper band.
	curY := barTop + barHeight/4
	canvas.Circle(timeX(eval.NewMinutes), curY, 7, "fill:"+colorCurrent)
	canvas.Text(timeX(eval.NewMinutes), barTop-10,
		fmt.Sprintf("Current: %.1f min", eval.NewMinutes),
		"text-anchor:middle;font-size:13px;font-family:sans-serif")

	canvas.Text(timelineWidth/2, timelineHeight-10, "Travel Time (minutes)",
		"text-anchor:middle;font-size:13px;font-family:sans-serif")

	canvas.End()
}
