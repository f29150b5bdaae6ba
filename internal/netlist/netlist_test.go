package netlist_test

import (
	"testing"

	"github.com/eder-matheus/ioplacer/internal/geom"
	"github.com/eder-matheus/ioplacer/internal/netlist"
)

func TestHPWL(t *testing.T) {
	n := netlist.New([]netlist.IOPin{
		{
			Name: "a",
			Sinks: []netlist.InstancePin{
				{Pos: geom.Coordinate{X: 0, Y: 0}},
				{Pos: geom.Coordinate{X: 100, Y: 50}},
			},
		},
		{Name: "zero"},
	})

	cases := map[string]struct {
		pin  int
		at   geom.Coordinate
		want geom.DBU
	}{
		"centered":       {0, geom.Coordinate{X: 50, Y: 25}, 100 + 50},
		"outside bbox":   {0, geom.Coordinate{X: 200, Y: 200}, 200 + 200},
		"zero-sink pin":  {1, geom.Coordinate{X: 999, Y: 999}, 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := n.HPWL(c.pin, c.at); got != c.want {
				t.Errorf("HPWL(%d, %v) = %d, want %d", c.pin, c.at, got, c.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	n := netlist.New([]netlist.IOPin{
		{Name: "a", Sinks: []netlist.InstancePin{{Pos: geom.Coordinate{X: 1, Y: 1}}}},
		{Name: "b"},
		{Name: "c", Sinks: []netlist.InstancePin{{Pos: geom.Coordinate{X: 2, Y: 2}}}},
		{Name: "d"},
	})
	sinked, zero := netlist.Split(n)
	if len(sinked) != 2 || sinked[0].Name != "a" || sinked[1].Name != "c" {
		t.Errorf("sinked = %+v, want [a, c]", sinked)
	}
	if len(zero) != 2 || zero[0].Name != "b" || zero[1].Name != "d" {
		t.Errorf("zero = %+v, want [b, d]", zero)
	}
}

func TestTotalHPWL(t *testing.T) {
	n := netlist.New([]netlist.IOPin{
		{Name: "a", Sinks: []netlist.InstancePin{{Pos: geom.Coordinate{X: 0, Y: 0}}}},
	})
	p := n.Pin(0)
	p.Pos = geom.Coordinate{X: 10, Y: 10}
	p.Placed = true
	n.SetPin(0, p)

	if got, want := n.TotalHPWL(), geom.DBU(20); got != want {
		t.Errorf("TotalHPWL() = %d, want %d", got, want)
	}
}

func TestTotalHPWLCountsUnplacedPins(t *testing.T) {
	// An unplaced pin still carries whatever coordinate the parser gave
	// it (here the zero value), and TotalHPWL must count it against its
	// sinks rather than skipping it — the pre-placement report needs a
	// meaningful baseline to compare the post-placement total against.
	n := netlist.New([]netlist.IOPin{
		{Name: "a", Sinks: []netlist.InstancePin{{Pos: geom.Coordinate{X: 10, Y: 10}}}},
	})
	if got, want := n.TotalHPWL(), geom.DBU(20); got != want {
		t.Errorf("TotalHPWL() = %d, want %d for an unplaced pin at the origin", got, want)
	}
}

func TestIndexAssignedOnNew(t *testing.T) {
	n := netlist.New([]netlist.IOPin{{Name: "a"}, {Name: "b"}})
	if n.Pin(0).Index != 0 || n.Pin(1).Index != 1 {
		t.Errorf("Index values not assigned by position")
	}
}
