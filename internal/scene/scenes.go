package scene

import "github.com/cabviz/cabviz/internal/insertion"

// Every scenario shares A's pickup and dropoff; scenarios differ only in
// where B enters and leaves, and in the shape of the driven route.
var (
	aPickup  = Point{X: 1, Y: 3}
	aDropoff = Point{X: 9, Y: 3}
)

func markerA() Marker {
	return Marker{Name: "A", Kind: MarkerPickup, At: aPickup, Label: LabelBelow}
}

func markerDa() Marker {
	return Marker{Name: "Da", Kind: MarkerDropoff, At: aDropoff, Label: LabelBelow}
}

var diagrams = map[insertion.Scenario]Diagram{
	insertion.ScenarioOnRouteDropAfter: {
		Scenario: insertion.ScenarioOnRouteDropAfter,
		Markers: []Marker{
			markerA(),
			markerDa(),
			{Name: "B", Kind: MarkerPickup, At: Point{X: 5, Y: 3}, Label: LabelBelow},
			{Name: "Db", Kind: MarkerDropoff, At: Point{X: 9.5, Y: 3}, Label: LabelBelow},
		},
		Paths: []Path{
			{Kind: PathDirect, Points: []Point{
				aPickup, {X: 5, Y: 3}, aDropoff, {X: 9.5, Y: 3},
			}},
		},
	},

	insertion.ScenarioDetourDropAfter: {
		Scenario: insertion.ScenarioDetourDropAfter,
		Markers: []Marker{
			markerA(),
			markerDa(),
			{Name: "B", Kind: MarkerPickup, At: Point{X: 4, Y: 5}, Label: LabelAbove},
			{Name: "Db", Kind: MarkerDropoff, At: Point{X: 9.5, Y: 3}, Label: LabelBelow},
		},
		Paths: []Path{
			{Kind: PathReference, Points: []Point{aPickup, aDropoff}},
			// Leave the direct line at (3,3), climb to B, rejoin at (5,3).
			{Kind: PathDetour, Points: []Point{
				aPickup, {X: 3, Y: 3}, {X: 4, Y: 5}, {X: 5, Y: 3}, aDropoff, {X: 9.5, Y: 3},
			}},
		},
	},

	insertion.ScenarioOnRouteDropBefore: {
		Scenario: insertion.ScenarioOnRouteDropBefore,
		Markers: []Marker{
			markerA(),
			markerDa(),
			{Name: "B", Kind: MarkerPickup, At: Point{X: 3, Y: 3}, Label: LabelBelow},
			{Name: "Db", Kind: MarkerDropoff, At: Point{X: 6, Y: 3}, Label: LabelBelow},
		},
		Paths: []Path{
			{Kind: PathDirect, Points: []Point{
				aPickup, {X: 3, Y: 3}, {X: 6, Y: 3}, aDropoff,
			}},
		},
	},

	insertion.ScenarioDoubleDetour: {
		Scenario: insertion.ScenarioDoubleDetour,
		Markers: []Marker{
			markerA(),
			markerDa(),
			{Name: "B", Kind: MarkerPickup, At: Point{X: 2.5, Y: 5}, Label: LabelAbove},
			{Name: "Db", Kind: MarkerDropoff, At: Point{X: 6, Y: 1}, Label: LabelBelow},
		},
		Paths: []Path{
			{Kind: PathReference, Points: []Point{aPickup, aDropoff}},
			// Two excursions: up to B between (2,3) and (3,3), down to Db
			// between (5,3) and (7,3).
			{Kind: PathDetour, Points: []Point{
				aPickup, {X: 2, Y: 3}, {X: 2.5, Y: 5}, {X: 3, Y: 3},
				{X: 5, Y: 3}, {X: 6, Y: 1}, {X: 7, Y: 3}, aDropoff,
			}},
		},
	},

	insertion.ScenarioPickupAfterDrop: {
		Scenario: insertion.ScenarioPickupAfterDrop,
		Markers: []Marker{
			markerA(),
			markerDa(),
			{Name: "B", Kind: MarkerPickup, At: Point{X: 9.2, Y: 4}, Label: LabelAbove},
			{Name: "Db", Kind: MarkerDropoff, At: Point{X: 9.5, Y: 5}, Label: LabelAbove},
		},
		Paths: []Path{
			{Kind: PathDirect, Points: []Point{aPickup, aDropoff}},
			{Kind: PathDirect, Points: []Point{aDropoff, {X: 9.2, Y: 4}, {X: 9.5, Y: 5}}},
		},
	},
}

// ForScenario returns the fixed diagram for a scenario, with the catalog
// title attached.
func ForScenario(s insertion.Scenario) (Diagram, bool) {
	d, ok := diagrams[s]
	if !ok {
		return Diagram{}, false
	}
	if entry, ok := insertion.Lookup(s); ok {
		d.Title = entry.Title
	}
	return d, true
}
