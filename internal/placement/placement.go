// Package placement sequences the placement engine's phases: slot
// enumeration, section building/assignment with retry, per-section
// Hungarian matching, zero-sink pin filling, and orientation
// assignment.
package placement

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zephyrtronium/contains"
	"golang.org/x/sync/errgroup"

	"github.com/eder-matheus/ioplacer/internal/geom"
	"github.com/eder-matheus/ioplacer/internal/hungarian"
	"github.com/eder-matheus/ioplacer/internal/ioslot"
	"github.com/eder-matheus/ioplacer/internal/netlist"
	"github.com/eder-matheus/ioplacer/internal/section"
)

// CostMult converts an integer-DBU HPWL into the Hungarian matcher's
// cost space, reserving headroom for the algorithm's internal potential
// updates. See spec §4.5.
const CostMult = 1000

// Recommended thresholds above which the retry loop only warns, per
// spec §4.4. They do not bound correctness, only advise.
const (
	MaxSectionsRecommended = 200
	MaxSlotsRecommended    = 1000
)

var (
	// ErrInvalidConfiguration flags a fatal configuration error: non-
	// positive slotsPerSection/usagePerSection, or retry preconditions
	// that cannot make progress. See spec §7.
	ErrInvalidConfiguration = errors.New("invalid placement configuration")
	// ErrCannotFit flags that the retry loop cannot make progress: an
	// attempt failed and both growth factors are zero.
	ErrCannotFit = errors.New("cannot fit pins into sections")
	// ErrNoSlotForFloatingPin flags more zero-sink pins than spare slots.
	ErrNoSlotForFloatingPin = errors.New("no slot available for a zero-sink pin")
)

// Config is the subset of spec §6 Parameters that drives the engine
// itself (paths, layer names, and returnHPWL live one layer up, in the
// root package).
type Config struct {
	SlotsPerSection     float64
	SlotsIncreaseFactor float64
	UsagePerSection     float64
	UsageIncreaseFactor float64
	ForcePinSpread      bool
}

// Validate enforces spec §4.4's validation rules, fatal at startup.
func (c Config) Validate() error {
	if !(c.SlotsPerSection > 1) {
		return fmt.Errorf("%w: slotsPerSection must be greater than one", ErrInvalidConfiguration)
	}
	if !(c.UsagePerSection > 0) {
		return fmt.Errorf("%w: usagePerSection must be greater than zero", ErrInvalidConfiguration)
	}
	if !c.ForcePinSpread && c.UsageIncreaseFactor == 0 && c.SlotsIncreaseFactor == 0 {
		return fmt.Errorf("%w: forcePinSpread is false and both growth factors are zero, retry cannot make progress", ErrInvalidConfiguration)
	}
	return nil
}

// Result is the outcome of a successful Place call: every I/O pin with
// its final position and orientation. Pins with sinks come first,
// grouped by section in boundary order, followed by the zero-sink pins
// in input order.
type Result struct {
	Pins []netlist.IOPin
}

// Place runs the full engine against core and the full input netlist
// (sinked and zero-sink pins together), per spec §4.8. log receives
// warning and informational lines; a nil log is replaced with a
// discarding logger.
func Place(ctx context.Context, core geom.Rectangle, full *netlist.Netlist, cfg Config, log *logrus.Logger) (Result, error) {
	if log == nil {
		log = logrus.New()
		log.Out = discard{}
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	sinkedPins, zeroSinkPins := netlist.Split(full)
	sinked := netlist.New(sinkedPins)

	slots, err := ioslot.Enumerate(core)
	if err != nil {
		return Result{}, err
	}

	sections, err := setupSections(ctx, slots, sinked, cfg, log)
	if err != nil {
		return Result{}, err
	}

	if err := matchAllSections(ctx, sections); err != nil {
		return Result{}, err
	}

	assigned := make([]netlist.IOPin, 0, sinked.Len()+len(zeroSinkPins))
	seen := contains.Set{}
	for _, sec := range sections {
		for _, pin := range sec.Pins() {
			if !seen.Add(uintptr(pin.Index)) {
				return Result{}, fmt.Errorf("placement: pin %d assigned to more than one section", pin.Index)
			}
			// Map the sinks-only view's index back to the pin's index in full.
			pin.Index = sinkedPins[pin.Index].Index
			assigned = append(assigned, pin)
		}
	}

	if err := fillZeroSinkPins(slots, zeroSinkPins, &assigned); err != nil {
		return Result{}, err
	}

	if err := assignOrientations(ctx, core, assigned); err != nil {
		return Result{}, err
	}

	return Result{Pins: assigned}, nil
}

// setupSections is the outer retry loop of spec §4.4: it builds
// sections and tries to assign every sinked pin to one; on failure it
// grows slotsPerSection and usagePerSection and tries again.
func setupSections(ctx context.Context, slots []ioslot.Slot, sinked *netlist.Netlist, cfg Config, log *logrus.Logger) ([]*section.Section, error) {
	sc := section.Config{
		SlotsPerSection: cfg.SlotsPerSection,
		UsagePerSection: cfg.UsagePerSection,
		ForcePinSpread:  cfg.ForcePinSpread,
	}
	for attempt := 0; ; attempt++ {
		sections, clamped := section.Build(slots, sc)
		if clamped {
			log.Warn("section usage exceeded max, clamping to 1.0")
			log.Warn("forcing slots per section to increase")
			sc.UsagePerSection = 1.0
			switch {
			case cfg.SlotsIncreaseFactor != 0:
				sc.SlotsPerSection *= 1 + cfg.SlotsIncreaseFactor
			case cfg.UsageIncreaseFactor != 0:
				sc.SlotsPerSection *= 1 + cfg.UsageIncreaseFactor
			default:
				sc.SlotsPerSection *= 1.1
			}
			sections, _ = section.Build(slots, sc)
		}

		ok, err := section.Assign(ctx, sections, sinked, cfg.ForcePinSpread)
		if err != nil {
			return nil, err
		}
		if ok {
			return sections, nil
		}

		if cfg.UsageIncreaseFactor == 0 && cfg.SlotsIncreaseFactor == 0 {
			return nil, fmt.Errorf("%w: attempt %d failed and both growth factors are zero", ErrCannotFit, attempt)
		}

		sc.UsagePerSection *= 1 + cfg.UsageIncreaseFactor
		sc.SlotsPerSection *= 1 + cfg.SlotsIncreaseFactor

		if len(sections) > MaxSectionsRecommended {
			log.Warnf("number of sections is %d while the maximum recommended value is %d; this may negatively affect performance", len(sections), MaxSectionsRecommended)
		}
		if int(sc.SlotsPerSection) > MaxSlotsRecommended {
			log.Warnf("slots per section is %d while the maximum recommended value is %d; this may negatively affect performance", int(sc.SlotsPerSection), MaxSlotsRecommended)
		}
	}
}

// matchAllSections runs the Hungarian matcher for every section with at
// least one assigned pin, in parallel, and writes the chosen slot back
// onto each pin. See spec §4.5/§5.2.
func matchAllSections(ctx context.Context, sections []*section.Section) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, sec := range sections {
		sec := sec
		if sec.CurSlots == 0 {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return matchSection(sec)
		})
	}
	return g.Wait()
}

// matchSection solves the minimum-cost assignment of sec's pins to
// sec's slots and writes the resulting position, marking each chosen
// slot used.
func matchSection(sec *section.Section) error {
	pins := sec.Pins()
	n := len(pins)
	m := len(sec.Slots)

	cost := make([][]int64, n)
	for i, pin := range pins {
		row := make([]int64, m)
		// HPWL must be computed against the same sinks the pin carried
		// into the section; sec.Pins() returns full IOPin values with
		// Sinks intact, so we build a throwaway single-pin Netlist to
		// reuse the HPWL estimator rather than duplicating its math.
		single := netlist.New([]netlist.IOPin{pin})
		for j, slot := range sec.Slots {
			row[j] = int64(single.HPWL(0, slot.Pos)) * CostMult
		}
		cost[i] = row
	}

	assignment, err := hungarian.Solve(cost)
	if err != nil {
		return fmt.Errorf("placement: section matching failed: %w", err)
	}

	result := make([]netlist.IOPin, n)
	for i, pin := range pins {
		slotIdx := assignment[i]
		if slotIdx < 0 || slotIdx >= m {
			return fmt.Errorf("placement: hungarian matcher left pin %d unassigned", pin.Index)
		}
		sec.Slots[slotIdx].Used = true
		pin.Pos = sec.Slots[slotIdx].Pos
		pin.Placed = true
		result[i] = pin
	}
	sec.SetPins(result)
	return nil
}

// fillZeroSinkPins walks slots in boundary order and assigns the next
// zero-sink pin to each remaining unused slot, per spec §4.7.
func fillZeroSinkPins(slots []ioslot.Slot, zeroSink []netlist.IOPin, assigned *[]netlist.IOPin) error {
	next := 0
	for i := range slots {
		if next >= len(zeroSink) {
			break
		}
		if slots[i].Used {
			continue
		}
		slots[i].Used = true
		pin := zeroSink[next]
		pin.Pos = slots[i].Pos
		pin.Placed = true
		*assigned = append(*assigned, pin)
		next++
	}
	if next < len(zeroSink) {
		return fmt.Errorf("%w: %d zero-sink pins remain with no unused slot", ErrNoSlotForFloatingPin, len(zeroSink)-next)
	}
	return nil
}

// assignOrientations derives each assigned pin's outward orientation
// from which edge of core its position lies on, in parallel (spec
// §5.3): each write targets a distinct pin object.
func assignOrientations(ctx context.Context, core geom.Rectangle, pins []netlist.IOPin) error {
	g, _ := errgroup.WithContext(ctx)
	for i := range pins {
		i := i
		g.Go(func() error {
			o, ok := geom.OrientationOf(pins[i].Pos, core)
			if !ok {
				// A placed pin not on the core boundary is a bug in the
				// slot enumerator, not a recoverable input error.
				panic(fmt.Sprintf("placement: pin %d placed at %v, which lies on no core edge", pins[i].Index, pins[i].Pos))
			}
			pins[i].Orient = o
			return nil
		})
	}
	return g.Wait()
}

// RandomPlacement assigns every pin in full a distinct slot drawn from
// a random permutation of slots, ignoring HPWL entirely. It exists for
// quick geometry sanity checks that do not need the real engine's cost
// minimization; see SPEC_FULL.md §10. r must be non-nil for a
// deterministic shuffle.
func RandomPlacement(core geom.Rectangle, full *netlist.Netlist, r *rand.Rand) (Result, error) {
	slots, err := ioslot.Enumerate(core)
	if err != nil {
		return Result{}, err
	}
	if full.Len() > len(slots) {
		return Result{}, fmt.Errorf("%w: %d pins but only %d slots", ErrNoSlotForFloatingPin, full.Len(), len(slots))
	}

	perm := r.Perm(len(slots))
	pins := full.Pins()
	for i := range pins {
		slot := slots[perm[i]]
		pins[i].Pos = slot.Pos
		pins[i].Placed = true
		o, ok := geom.OrientationOf(slot.Pos, core)
		if !ok {
			panic(fmt.Sprintf("placement: random slot %v lies on no core edge", slot.Pos))
		}
		pins[i].Orient = o
	}
	return Result{Pins: pins}, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
