// Package ioslot enumerates the legal boundary positions ("slots") an
// I/O pin may be placed at, given a core rectangle and its routing
// track parameters.
package ioslot

import (
	"errors"
	"fmt"

	"github.com/eder-matheus/ioplacer/internal/geom"
)

// ErrInvalidGeometry is returned by Enumerate when the core rectangle is
// degenerate or an edge produces no slots.
var ErrInvalidGeometry = errors.New("invalid core geometry")

// Slot is a single legal candidate position on the core boundary.
type Slot struct {
	Pos  geom.Coordinate
	Used bool
}

// Enumerate produces the ordered boundary slot sequence for core,
// traversing counter-clockwise starting at the lower-left corner:
// bottom (left to right), right (bottom to top), top (right to left),
// left (top to bottom). See spec §4.1.
func Enumerate(core geom.Rectangle) ([]Slot, error) {
	if !core.Valid() {
		return nil, fmt.Errorf("%w: degenerate core bounds or non-positive track parameters", ErrInvalidGeometry)
	}

	bottom := walk(core.LB.X+core.InitTracksX, core.UB.X, core.PitchX, func(x geom.DBU) geom.Coordinate {
		return geom.Coordinate{X: x, Y: core.LB.Y}
	})
	right := walk(core.LB.Y+core.InitTracksY, core.UB.Y, core.PitchY, func(y geom.DBU) geom.Coordinate {
		return geom.Coordinate{X: core.UB.X, Y: y}
	})
	top := walk(core.LB.X+core.InitTracksX, core.UB.X, core.PitchX, func(x geom.DBU) geom.Coordinate {
		return geom.Coordinate{X: x, Y: core.UB.Y}
	})
	reverse(top)
	left := walk(core.LB.Y+core.InitTracksY, core.UB.Y, core.PitchY, func(y geom.DBU) geom.Coordinate {
		return geom.Coordinate{X: core.LB.X, Y: y}
	})
	reverse(left)

	named := []struct {
		name string
		edge []geom.Coordinate
	}{
		{"bottom", bottom}, {"right", right}, {"top", top}, {"left", left},
	}
	for _, n := range named {
		if len(n.edge) == 0 {
			return nil, fmt.Errorf("%w: edge %s produced zero slots", ErrInvalidGeometry, n.name)
		}
	}

	slots := make([]Slot, 0, len(bottom)+len(right)+len(top)+len(left))
	for _, edges := range [][]geom.Coordinate{bottom, right, top, left} {
		for _, pos := range edges {
			slots = append(slots, Slot{Pos: pos})
		}
	}
	return slots, nil
}

// walk steps from start to just below stop by step, emitting one
// coordinate per position via at.
func walk(start, stop, step geom.DBU, at func(geom.DBU) geom.Coordinate) []geom.Coordinate {
	var out []geom.Coordinate
	for v := start; v < stop; v += step {
		out = append(out, at(v))
	}
	return out
}

func reverse(s []geom.Coordinate) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
