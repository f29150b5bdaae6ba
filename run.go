package ioplacer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/eder-matheus/ioplacer/internal/netlist"
	"github.com/eder-matheus/ioplacer/internal/placement"
)

// Result is the outcome of a successful Run: every I/O pin from the
// input netlist with its final position and orientation.
type Result struct {
	Pins []netlist.IOPin
}

// Run sequences one placement end to end, per SPEC_FULL.md §4.8: parse,
// enumerate slots, build and assign sections (retrying on failure),
// match each section with the Hungarian algorithm, fill zero-sink pins,
// assign orientations, then hand the result to writer. log is optional;
// a nil logger discards all output.
func Run(ctx context.Context, cfg Config, parser Parser, writer Writer, log *logrus.Logger) (Result, error) {
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}

	core, full, err := parser.Parse(ctx, cfg.InputDefFile)
	if err != nil {
		return Result{}, newError(ParseFailure, err)
	}

	if cfg.ReturnHPWL {
		log.Infof("***HPWL before IOPlacement: %.3f", float64(full.TotalHPWL())/2000)
	}

	engineCfg := placement.Config{
		SlotsPerSection:     cfg.SlotsPerSection,
		SlotsIncreaseFactor: cfg.SlotsIncreaseFactor,
		UsagePerSection:     cfg.UsagePerSection,
		UsageIncreaseFactor: cfg.UsageIncreaseFactor,
		ForcePinSpread:      cfg.ForcePinSpread,
	}

	res, err := placement.Place(ctx, core, full, engineCfg, log)
	if err != nil {
		return Result{}, translatePlacementError(err)
	}

	if cfg.ReturnHPWL {
		placed := netlist.New(res.Pins)
		log.Infof("***HPWL after IOPlacement: %.3f", float64(placed.TotalHPWL())/2000)
	}

	sinked, _ := netlist.Split(full)
	sinksOnly := netlist.New(sinked)
	if err := writer.Write(ctx, cfg.InputDefFile, cfg.OutputDefFile, sinksOnly, res.Pins, cfg.HorizontalMetalLayerName(), cfg.VerticalMetalLayerName()); err != nil {
		return Result{}, fmt.Errorf("writing output: %w", err)
	}

	return Result{Pins: res.Pins}, nil
}

// translatePlacementError maps an internal/placement sentinel error
// onto the root package's public Kind taxonomy.
func translatePlacementError(err error) error {
	switch {
	case errors.Is(err, placement.ErrInvalidConfiguration):
		return newError(InvalidConfiguration, err)
	case errors.Is(err, placement.ErrCannotFit):
		return newError(CannotFit, err)
	case errors.Is(err, placement.ErrNoSlotForFloatingPin):
		return newError(NoSlotForFloatingPin, err)
	default:
		// ioslot.ErrInvalidGeometry and any other internal invariant
		// failure surface here.
		return newError(InvalidGeometry, err)
	}
}
