package ioplacer

import (
	"context"
	"io/fs"

	"github.com/eder-matheus/ioplacer/internal/geom"
	"github.com/eder-matheus/ioplacer/internal/netlist"
)

// Parser is the external collaborator that reads a physical design
// exchange file into a core rectangle and a netlist. Parsing the
// specifics of any particular exchange format is out of scope for this
// module; see SPEC_FULL.md §1/§6.1.
type Parser interface {
	Parse(ctx context.Context, path string) (geom.Rectangle, *netlist.Netlist, error)
}

// Writer is the external collaborator that emits the updated exchange
// file with I/O pins placed at their computed positions and
// orientations. See SPEC_FULL.md §6.1.
type Writer interface {
	Write(ctx context.Context, inPath, outPath string, sinks *netlist.Netlist, assigned []netlist.IOPin, horizontalLayer, verticalLayer string) error
}

// BlockageReader is the hook for an external collaborator that marks
// keep-out sub-regions of the core. No implementation ships with this
// module; blockage avoidance is a Non-goal (SPEC_FULL.md §6.3). Run
// takes no BlockageReader and does not read Config.BlockagesFile.
type BlockageReader interface {
	ReadBlockages(fsys fs.FS, path string, core geom.Rectangle) (geom.Rectangle, error)
}
