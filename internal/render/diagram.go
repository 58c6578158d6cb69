// Package render draws the scenario diagrams as SVG documents.
package render

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/cabviz/cabviz/internal/scene"
)

// Drawing palette. Pickup/dropoff colors match the marker kinds everywhere in
// the UI; the detour route gets its own color against the black direct route.
const (
	colorPickup  = "#4CAF50"
	colorDropoff = "#F44336"
	colorDirect  = "#000000"
	colorDetour  = "#2196F3"
)

// Route diagram layout in pixels. Plot space (10 x 6 units) is scaled
// uniformly and flipped vertically, with room above for the title.
const (
	diagramScale  = 60
	diagramMargin = 20
	titleBand     = 36

	diagramWidth  = diagramMargin*2 + scene.PlotWidth*diagramScale
	diagramHeight = diagramMargin*2 + titleBand + scene.PlotHeight*diagramScale
)

func px(v float64) int {
	return int(math.Round(v))
}

// plotX and plotY map plot coordinates to pixels.
func plotX(x float64) int {
	return px(diagramMargin + x*diagramScale)
}

func plotY(y float64) int {
	return px(diagramMargin + titleBand + (scene.PlotHeight-y)*diagramScale)
}

// RouteDiagram writes the fixed scene for a scenario as an SVG document.
// The diagram is purely illustrative; nothing here depends on the trip
// parameters or the evaluated time.
func RouteDiagram(w io.Writer, d scene.Diagram) {
	canvas := svg.New(w)
	canvas.Start(px(diagramWidth), px(diagramHeight))
	canvas.Rect(0, 0, px(diagramWidth), px(diagramHeight), "fill:#ffffff")

	canvas.Text(px(diagramWidth/2), 26, d.Title,
		"text-anchor:middle;font-size:16px;font-family:sans-serif")

	drawPlotFrame(canvas)

	// Reference lines go down first so routes and markers sit on top.
	for _, p := range d.Paths {
		if p.Kind == scene.PathReference {
			drawPath(canvas, p)
		}
	}
	for _, p := range d.Paths {
		if p.Kind != scene.PathReference {
			drawPath(canvas, p)
		}
	}

	for _, m := range d.Markers {
		drawMarker(canvas, m)
	}

	drawLegend(canvas, d.HasDetour())

	canvas.End()
}

// drawPlotFrame draws the bordered plot area with a faint unit grid.
func drawPlotFrame(canvas *svg.SVG) {
	left, top := plotX(0), plotY(scene.PlotHeight)
	right, bottom := plotX(scene.PlotWidth), plotY(0)

	for x := 1.0; x < scene.PlotWidth; x++ {
		canvas.Line(plotX(x), top, plotX(x), bottom,
			"stroke:#dddddd;stroke-width:1;stroke-dasharray:4,4")
	}
	for y := 1.0; y < scene.PlotHeight; y++ {
		canvas.Line(left, plotY(y), right, plotY(y),
			"stroke:#dddddd;stroke-width:1;stroke-dasharray:4,4")
	}

	canvas.Rect(left, top, right-left, bottom-top,
		"fill:none;stroke:#888888;stroke-width:1")
}

func drawPath(canvas *svg.SVG, p scene.Path) {
	xs := make([]int, len(p.Points))
	ys := make([]int, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = plotX(pt.X)
		ys[i] = plotY(pt.Y)
	}

	var style string
	switch p.Kind {
	case scene.PathDetour:
		style = "fill:none;stroke:" + colorDetour + ";stroke-width:3"
	case scene.PathReference:
		style = "fill:none;stroke:" + colorDirect + ";stroke-width:2;stroke-opacity:0.3"
	default:
		style = "fill:none;stroke:" + colorDirect + ";stroke-width:3"
	}

	canvas.Polyline(xs, ys, style)
}

func drawMarker(canvas *svg.SVG, m scene.Marker) {
	x, y := plotX(m.At.X), plotY(m.At.Y)

	if m.Kind == scene.MarkerPickup {
		canvas.Circle(x, y, 9, "fill:"+colorPickup)
	} else {
		canvas.Rect(x-8, y-8, 16, 16, "fill:"+colorDropoff)
	}

	labelY := y + 26
	if m.Label == scene.LabelAbove {
		labelY = y - 16
	}
	canvas.Text(x, labelY, m.Name,
		"text-anchor:middle;font-size:14px;font-family:sans-serif")
}

// drawLegend paints the legend box in the upper left of the plot area.
func drawLegend(canvas *svg.SVG, withDetour bool) {
	x := plotX(0.2)
	y := plotY(scene.PlotHeight) + 14
	step := 22

	canvas.Circle(x+6, y, 6, "fill:"+colorPickup)
	canvas.Text(x+20, y+5, "Pickup Point", legendTextStyle)

	y += step
	canvas.Rect(x, y-6, 12, 12, "fill:"+colorDropoff)
	canvas.Text(x+20, y+5, "Dropoff Point", legendTextStyle)

	y += step
	canvas.Line(x, y, x+12, y, "stroke:"+colorDirect+";stroke-width:3")
	canvas.Text(x+20, y+5, "Direct Route", legendTextStyle)

	if withDetour {
		y += step
		canvas.Line(x, y, x+12, y, "stroke:"+colorDetour+";stroke-width:3")
		canvas.Text(x+20, y+5, "Route with Detour", legendTextStyle)
	}
}

const legendTextStyle = "font-size:12px;font-family:sans-serif"
