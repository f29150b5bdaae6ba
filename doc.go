/*
Package ioplacer places the top-level I/O pins of a rectangular chip
core along its boundary.

Given the core's bounding rectangle, its per-axis routing-track pitch
and offset, and a netlist of I/O pins each connected to zero or more
internal sink cells, ioplacer assigns every I/O pin a distinct, legal,
on-track boundary position and a cardinal orientation, chosen to
minimize the aggregate half-perimeter wire length (HPWL) to each pin's
sinks.

Placement proceeds in three phases: the boundary is enumerated into an
ordered sequence of candidate slots; slots are grouped into
capacity-limited sections and pins are greedily assigned to the section
cheapest by estimated HPWL, growing section capacity and retrying on
failure; and within each section, pins are assigned to slots by exact
minimum-cost bipartite matching (the Hungarian algorithm). I/O pins with
no sinks carry no cost signal and are filled into whatever slots remain
once the costed pins are placed.

# Usage

Embedding ioplacer means supplying a Parser that reads your design
format into a core rectangle and netlist, and a Writer that consumes
the finished assignment:

	cfg := ioplacer.DefaultConfig()
	result, err := ioplacer.Run(context.Background(), cfg, myParser, myWriter, nil)

The last argument is an optional *logrus.Logger; a nil logger discards
the warning lines and the HPWL report lines that Config.ReturnHPWL
enables.

Out of scope: parsing of any specific physical-design exchange file
format, emission of such a file, blockage-aware placement beyond the
BlockageReader hook, timing-driven placement, pin grouping, multi-die
cores, and incremental re-placement.
*/
package ioplacer
