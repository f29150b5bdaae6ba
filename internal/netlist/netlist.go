// Package netlist holds the I/O pins of a placement run and their
// internal sink connections, and answers half-perimeter wire length
// queries against them.
package netlist

import "github.com/eder-matheus/ioplacer/internal/geom"

// InstancePin is the coordinate of an internal cell pin that an I/O pin
// connects to. Immutable for the run.
type InstancePin struct {
	Name string
	Pos  geom.Coordinate
}

// IOPin is one top-level I/O pin: a stable identity, an optional
// assigned position, an orientation, and its sinks.
type IOPin struct {
	// Index is this pin's position in the originating Netlist. Split
	// keeps it; New overwrites it with the pin's position in the new
	// Netlist.
	Index int
	Name  string

	// Pos is the assigned position, valid only once placement completes
	// for this pin.
	Pos    geom.Coordinate
	Placed bool
	Orient geom.Orientation
	Sinks  []InstancePin
}

// HasSinks reports whether pin has at least one sink.
func (p IOPin) HasSinks() bool { return len(p.Sinks) > 0 }

// Netlist is an ordered collection of I/O pins.
type Netlist struct {
	pins []IOPin
}

// New builds a Netlist from pins, in the given order. Each pin's Index
// is overwritten to match its position in pins.
func New(pins []IOPin) *Netlist {
	n := &Netlist{pins: make([]IOPin, len(pins))}
	copy(n.pins, pins)
	for i := range n.pins {
		n.pins[i].Index = i
	}
	return n
}

// Len returns the number of I/O pins.
func (n *Netlist) Len() int { return len(n.pins) }

// Pin returns a copy of the pin at index i.
func (n *Netlist) Pin(i int) IOPin { return n.pins[i] }

// SetPin overwrites the pin at index i.
func (n *Netlist) SetPin(i int, p IOPin) { n.pins[i] = p }

// Pins returns a copy of the full pin slice, in index order.
func (n *Netlist) Pins() []IOPin {
	out := make([]IOPin, len(n.pins))
	copy(out, n.pins)
	return out
}

// NumSinks returns the number of sinks of pin i.
func (n *Netlist) NumSinks(i int) int { return len(n.pins[i].Sinks) }

// Sinks returns the sinks of pin i.
func (n *Netlist) Sinks(i int) []InstancePin { return n.pins[i].Sinks }

// HPWL returns the half-perimeter wire length of pin i's bounding box
// if the I/O were placed at at, including all of pin i's sinks. A
// sinkless pin always has HPWL 0.
func (n *Netlist) HPWL(i int, at geom.Coordinate) geom.DBU {
	sinks := n.pins[i].Sinks
	if len(sinks) == 0 {
		return 0
	}
	minX, maxX := at.X, at.X
	minY, maxY := at.Y, at.Y
	for _, s := range sinks {
		if s.Pos.X < minX {
			minX = s.Pos.X
		}
		if s.Pos.X > maxX {
			maxX = s.Pos.X
		}
		if s.Pos.Y < minY {
			minY = s.Pos.Y
		}
		if s.Pos.Y > maxY {
			maxY = s.Pos.Y
		}
	}
	return (maxX - minX) + (maxY - minY)
}

// TotalHPWL sums HPWL(i, pins[i].Pos) over every pin in n, for the
// legacy pre/post-placement report. Pos is whatever coordinate the pin
// currently carries — the parser's initial (possibly unplaced) position
// before a run, or the engine's assigned position after one — matching
// the original's pre-placement baseline, which reports over every pin's
// current coordinate rather than skipping the ones not yet placed.
func (n *Netlist) TotalHPWL() geom.DBU {
	var total geom.DBU
	for i, p := range n.pins {
		total += n.HPWL(i, p.Pos)
	}
	return total
}

// Split partitions n into the pins with at least one sink (in original
// index order) and the pins with none, matching spec §4.8 step 2. Both
// returned slices retain the original pins' Index values so callers can
// map back into n.
func Split(n *Netlist) (sinked, zeroSink []IOPin) {
	for _, p := range n.pins {
		if p.HasSinks() {
			sinked = append(sinked, p)
		} else {
			zeroSink = append(zeroSink, p)
		}
	}
	return sinked, zeroSink
}
