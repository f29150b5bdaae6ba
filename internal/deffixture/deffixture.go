// Package deffixture is a reference Parser/Writer pair against a plain
// line-oriented text format, standing in for the DEF/LEF exchange-file
// collaborators that spec.md places out of scope. It exists so the
// engine can be exercised end to end in tests and from cmd/ioplacer
// without a real physical-design reader.
//
// Format (one directive per line, blank lines and lines starting with
// # ignored):
//
//	CORE lbx lby ubx uby pitchx pitchy initTracksX initTracksY
//	IOPIN name
//	SINK name x y
//	...repeat IOPIN/SINK...
package deffixture

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eder-matheus/ioplacer/internal/geom"
	"github.com/eder-matheus/ioplacer/internal/netlist"
)

// Fixture implements ioplacer.Parser and ioplacer.Writer against the
// package-level text format.
type Fixture struct{}

// Parse reads the fixture file at path into a core rectangle and
// netlist.
func (Fixture) Parse(_ context.Context, path string) (geom.Rectangle, *netlist.Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Rectangle{}, nil, fmt.Errorf("deffixture: %w", err)
	}
	defer f.Close()

	var core geom.Rectangle
	var haveCore bool
	var pins []netlist.IOPin

	scan := bufio.NewScanner(f)
	lineNo := 0
	for scan.Scan() {
		lineNo++
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "CORE":
			core, err = parseCore(fields[1:])
			if err != nil {
				return geom.Rectangle{}, nil, fmt.Errorf("deffixture:%d: %w", lineNo, err)
			}
			haveCore = true
		case "IOPIN":
			if len(fields) != 2 {
				return geom.Rectangle{}, nil, fmt.Errorf("deffixture:%d: IOPIN expects a name", lineNo)
			}
			pins = append(pins, netlist.IOPin{Name: fields[1]})
		case "SINK":
			if len(pins) == 0 {
				return geom.Rectangle{}, nil, fmt.Errorf("deffixture:%d: SINK before any IOPIN", lineNo)
			}
			if len(fields) != 4 {
				return geom.Rectangle{}, nil, fmt.Errorf("deffixture:%d: SINK expects name x y", lineNo)
			}
			x, errX := strconv.ParseInt(fields[2], 10, 64)
			y, errY := strconv.ParseInt(fields[3], 10, 64)
			if errX != nil || errY != nil {
				return geom.Rectangle{}, nil, fmt.Errorf("deffixture:%d: bad sink coordinate", lineNo)
			}
			last := &pins[len(pins)-1]
			last.Sinks = append(last.Sinks, netlist.InstancePin{
				Name: fields[1],
				Pos:  geom.Coordinate{X: geom.DBU(x), Y: geom.DBU(y)},
			})
		default:
			return geom.Rectangle{}, nil, fmt.Errorf("deffixture:%d: unknown directive %q", lineNo, fields[0])
		}
	}
	if err := scan.Err(); err != nil {
		return geom.Rectangle{}, nil, fmt.Errorf("deffixture: %w", err)
	}
	if !haveCore {
		return geom.Rectangle{}, nil, fmt.Errorf("deffixture: missing CORE directive")
	}
	return core, netlist.New(pins), nil
}

func parseCore(fields []string) (geom.Rectangle, error) {
	if len(fields) != 8 {
		return geom.Rectangle{}, fmt.Errorf("CORE expects 8 integers, got %d", len(fields))
	}
	vals := make([]int64, 8)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return geom.Rectangle{}, fmt.Errorf("CORE field %d: %w", i, err)
		}
		vals[i] = v
	}
	return geom.Rectangle{
		LB:          geom.Coordinate{X: geom.DBU(vals[0]), Y: geom.DBU(vals[1])},
		UB:          geom.Coordinate{X: geom.DBU(vals[2]), Y: geom.DBU(vals[3])},
		PitchX:      geom.DBU(vals[4]),
		PitchY:      geom.DBU(vals[5]),
		InitTracksX: geom.DBU(vals[6]),
		InitTracksY: geom.DBU(vals[7]),
	}, nil
}

// Write emits the placed assignment as a fixture file at outPath: the
// original CORE line copied from inPath, followed by one PLACEDPIN line
// per pin giving its name, position, and orientation on the named
// layers.
func (Fixture) Write(_ context.Context, inPath, outPath string, _ *netlist.Netlist, assigned []netlist.IOPin, horizontalLayer, verticalLayer string) error {
	in, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("deffixture: %w", err)
	}

	var b strings.Builder
	for _, line := range strings.Split(string(in), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "CORE") {
			b.WriteString(line)
			b.WriteString("\n")
			break
		}
	}
	for _, p := range assigned {
		// Pins on the top/bottom edges are reached by wires running
		// vertically into the core, so they sit on the vertical layer;
		// left/right-edge pins sit on the horizontal layer.
		layer := verticalLayer
		if p.Orient == geom.East || p.Orient == geom.West {
			layer = horizontalLayer
		}
		fmt.Fprintf(&b, "PLACEDPIN %s %d %d %s %s\n", p.Name, p.Pos.X, p.Pos.Y, p.Orient, layer)
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("deffixture: %w", err)
	}
	return nil
}
