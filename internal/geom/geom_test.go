package geom_test

import (
	"testing"

	"github.com/eder-matheus/ioplacer/internal/geom"
)

// TestOrientationOfCorners covers the four corner overrides exactly as
// listed in spec §4.6, synthesized directly since the slot enumerator
// never produces an exact corner position (initTracks > 0).
func TestOrientationOfCorners(t *testing.T) {
	core := geom.Rectangle{
		LB:          geom.Coordinate{X: 0, Y: 0},
		UB:          geom.Coordinate{X: 1000, Y: 1000},
		PitchX:      100,
		PitchY:      100,
		InitTracksX: 50,
		InitTracksY: 50,
	}
	cases := map[string]struct {
		pos  geom.Coordinate
		want geom.Orientation
	}{
		"lower-left (lbX, lbY)":  {geom.Coordinate{X: core.LB.X, Y: core.LB.Y}, geom.East},
		"upper-left (lbX, ubY)":  {geom.Coordinate{X: core.LB.X, Y: core.UB.Y}, geom.South},
		"lower-right (ubX, lbY)": {geom.Coordinate{X: core.UB.X, Y: core.LB.Y}, geom.North},
		"upper-right (ubX, ubY)": {geom.Coordinate{X: core.UB.X, Y: core.UB.Y}, geom.West},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := geom.OrientationOf(c.pos, core)
			if !ok {
				t.Fatalf("OrientationOf(%v) reported no match", c.pos)
			}
			if got != c.want {
				t.Errorf("OrientationOf(%v) = %s, want %s", c.pos, got, c.want)
			}
		})
	}
}

func TestOrientationOfEdges(t *testing.T) {
	core := geom.Rectangle{LB: geom.Coordinate{X: 0, Y: 0}, UB: geom.Coordinate{X: 1000, Y: 1000}}
	cases := map[string]struct {
		pos  geom.Coordinate
		want geom.Orientation
	}{
		"left edge, mid y":   {geom.Coordinate{X: 0, Y: 500}, geom.East},
		"right edge, mid y":  {geom.Coordinate{X: 1000, Y: 500}, geom.West},
		"bottom edge, mid x": {geom.Coordinate{X: 500, Y: 0}, geom.North},
		"top edge, mid x":    {geom.Coordinate{X: 500, Y: 1000}, geom.South},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := geom.OrientationOf(c.pos, core)
			if !ok || got != c.want {
				t.Errorf("OrientationOf(%v) = %s, %v; want %s, true", c.pos, got, ok, c.want)
			}
		})
	}
}

func TestOrientationOfInterior(t *testing.T) {
	core := geom.Rectangle{LB: geom.Coordinate{X: 0, Y: 0}, UB: geom.Coordinate{X: 1000, Y: 1000}}
	if _, ok := geom.OrientationOf(geom.Coordinate{X: 500, Y: 500}, core); ok {
		t.Error("OrientationOf reported a match for an interior point")
	}
}

func TestRectangleValid(t *testing.T) {
	cases := map[string]struct {
		r    geom.Rectangle
		want bool
	}{
		"ok": {geom.Rectangle{LB: geom.Coordinate{X: 0, Y: 0}, UB: geom.Coordinate{X: 10, Y: 10}, PitchX: 1, PitchY: 1, InitTracksX: 1, InitTracksY: 1}, true},
		"ub<=lb x": {geom.Rectangle{LB: geom.Coordinate{X: 10, Y: 0}, UB: geom.Coordinate{X: 10, Y: 10}, PitchX: 1, PitchY: 1, InitTracksX: 1, InitTracksY: 1}, false},
		"zero pitch": {geom.Rectangle{LB: geom.Coordinate{X: 0, Y: 0}, UB: geom.Coordinate{X: 10, Y: 10}, PitchX: 0, PitchY: 1, InitTracksX: 1, InitTracksY: 1}, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.r.Valid(); got != c.want {
				t.Errorf("Valid() = %v, want %v", got, c.want)
			}
		})
	}
}
