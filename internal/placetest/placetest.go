// Package placetest builds small fixture cores and netlists for the
// internal/placement test suite, mirroring the teacher's testutils
// package.
package placetest

import (
	"github.com/eder-matheus/ioplacer/internal/geom"
	"github.com/eder-matheus/ioplacer/internal/netlist"
)

// SquareCore returns a core rectangle of the given side length, pitch,
// and init-track offset on both axes, with its lower-left corner at the
// origin.
func SquareCore(side, pitch, initTracks geom.DBU) geom.Rectangle {
	return geom.Rectangle{
		LB:          geom.Coordinate{X: 0, Y: 0},
		UB:          geom.Coordinate{X: side, Y: side},
		PitchX:      pitch,
		PitchY:      pitch,
		InitTracksX: initTracks,
		InitTracksY: initTracks,
	}
}

// OnePinOneSink builds a single-pin netlist whose pin has exactly one
// sink at (sx, sy).
func OnePinOneSink(name string, sx, sy geom.DBU) *netlist.Netlist {
	return netlist.New([]netlist.IOPin{
		{
			Name:  name,
			Sinks: []netlist.InstancePin{{Name: name + "_sink", Pos: geom.Coordinate{X: sx, Y: sy}}},
		},
	})
}

// Pin builds an IOPin with the given name and sink coordinates (x, y
// pairs). An empty coords produces a zero-sink pin.
func Pin(name string, coords ...geom.DBU) netlist.IOPin {
	p := netlist.IOPin{Name: name}
	for i := 0; i+1 < len(coords); i += 2 {
		p.Sinks = append(p.Sinks, netlist.InstancePin{
			Name: name + "_sink",
			Pos:  geom.Coordinate{X: coords[i], Y: coords[i+1]},
		})
	}
	return p
}
