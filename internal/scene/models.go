// Package scene holds the fixed illustrative geometry for each insertion
// scenario. The diagrams are decorative: coordinates never react to the trip
// parameters or the evaluated time, only to the scenario identifier.
package scene

import "github.com/cabviz/cabviz/internal/insertion"

// Point is a position in plot space. All diagrams share the same canvas:
// x in [0, 10], y in [0, 6], y increasing upward.
type Point struct {
	X float64
	Y float64
}

// Plot space bounds.
const (
	PlotWidth  = 10.0
	PlotHeight = 6.0
)

// MarkerKind distinguishes pickup points from dropoff points.
type MarkerKind string

const (
	MarkerPickup  MarkerKind = "PICKUP"
	MarkerDropoff MarkerKind = "DROPOFF"
)

// LabelSide says where a marker's name is drawn relative to the marker.
type LabelSide string

const (
	LabelBelow LabelSide = "BELOW"
	LabelAbove LabelSide = "ABOVE"
)

// Marker is a named point on the diagram: A and B for pickups, Da and Db for
// dropoffs.
type Marker struct {
	Name  string
	Kind  MarkerKind
	At    Point
	Label LabelSide
}

// PathKind selects how a route path is drawn.
type PathKind string

const (
	// PathDirect is a leg of the driven route that stays on the direct line.
	PathDirect PathKind = "DIRECT"

	// PathDetour is the driven route where it leaves the direct line to serve
	// B, drawn in a distinct color.
	PathDetour PathKind = "DETOUR"

	// PathReference is the faded undiverted A to Da line shown behind a
	// detour for comparison.
	PathReference PathKind = "REFERENCE"
)

// Path is an ordered polyline through plot space.
type Path struct {
	Kind   PathKind
	Points []Point
}

// Diagram is the complete fixed scene for one scenario.
type Diagram struct {
	Scenario insertion.Scenario
	Title    string
	Markers  []Marker
	Paths    []Path
}

// HasDetour reports whether the diagram contains a detour path, which adds a
// legend entry when rendered.
func (d Diagram) HasDetour() bool {
	for _, p := range d.Paths {
		if p.Kind == PathDetour {
			return true
		}
	}
	return false
}
