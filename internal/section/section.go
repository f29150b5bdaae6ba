// Package section partitions the global slot sequence into
// capacity-limited, contiguous groups and greedily assigns sinked I/O
// pins to the section estimated cheapest by half-perimeter wire length.
package section

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/eder-matheus/ioplacer/internal/geom"
	"github.com/eder-matheus/ioplacer/internal/ioslot"
	"github.com/eder-matheus/ioplacer/internal/netlist"
)

// Config are the tunables that shape section sizing. See spec §4.2/§4.4.
type Config struct {
	SlotsPerSection float64
	UsagePerSection float64
	ForcePinSpread  bool
}

// Section is a contiguous, capacity-limited run of slots together with
// the I/O pins assigned to it.
type Section struct {
	// SlotLo, SlotHi are the [lo, hi) index range into the global slot
	// slice that this section's Slots were drawn from.
	SlotLo, SlotHi int
	Slots          []ioslot.Slot
	Anchor         geom.Coordinate
	MaxSlots       int
	CurSlots       int

	pins []netlist.IOPin
}

// Pins returns the I/O pins assigned to this section, in assignment
// order.
func (s *Section) Pins() []netlist.IOPin {
	out := make([]netlist.IOPin, len(s.pins))
	copy(out, s.pins)
	return out
}

// SetPins overwrites this section's assigned pins, e.g. after the
// Hungarian matcher has written back each pin's chosen position.
func (s *Section) SetPins(pins []netlist.IOPin) {
	s.pins = append(s.pins[:0], pins...)
}

// Build chunks slots into sections of at most int(cfg.SlotsPerSection)
// consecutive slots each, per spec §4.2. usagePerSection is clamped to
// 1.0 if it exceeds it, in which case clamped reports the clamp so the
// caller can log the warning spec §4.2 requires.
func Build(slots []ioslot.Slot, cfg Config) (sections []*Section, clamped bool) {
	slotsPerSection := int(cfg.SlotsPerSection)
	if slotsPerSection < 1 {
		slotsPerSection = 1
	}
	usage := cfg.UsagePerSection
	if usage > 1.0 {
		usage = 1.0
		clamped = true
	}
	rawMaxSlots := int(math.Floor(float64(slotsPerSection) * usage))

	for lo := 0; lo < len(slots); lo += slotsPerSection {
		hi := lo + slotsPerSection
		if hi > len(slots) {
			hi = len(slots)
		}
		// chunk aliases the shared backing array (no copy), per the
		// design note that sections reference a contiguous index range
		// rather than owning their slots: marking a slot used inside a
		// section must be visible to the caller's global slot slice.
		chunk := slots[lo:hi]
		// maxSlots can never exceed this chunk's own length — the
		// trailing chunk is commonly shorter than slotsPerSection, and
		// slotsPerSection itself may exceed the total slot count.
		maxSlots := rawMaxSlots
		if maxSlots > len(chunk) {
			maxSlots = len(chunk)
		}
		sections = append(sections, &Section{
			SlotLo:   lo,
			SlotHi:   hi,
			Slots:    chunk,
			Anchor:   chunk[len(chunk)/2].Pos,
			MaxSlots: maxSlots,
		})
	}
	return sections, clamped
}

// Assign places every pin in sinks into exactly one section, preferring
// the section with lowest HPWL from the pin's sinks to the section's
// anchor, breaking ties by section index. It returns false the moment
// any pin cannot be placed, without rolling back partial assignments —
// the caller (the retry loop in internal/placement) discards the whole
// attempt and rebuilds sections with looser parameters.
//
// Per spec §4.4 step 4 and §9's open question, when forcePinSpread is
// false only the single best section is ever considered for a pin; if
// it is full the pin fails even though another section might have had
// room. That asymmetry is preserved intentionally to match the
// reference engine's behavior, not fixed, since it is the documented
// contract.
func Assign(ctx context.Context, sections []*Section, sinks *netlist.Netlist, forcePinSpread bool) (bool, error) {
	for i := 0; i < sinks.Len(); i++ {
		pin := sinks.Pin(i)

		dst, err := sectionDistances(ctx, sections, sinks, i)
		if err != nil {
			return false, err
		}

		order := make([]int, len(sections))
		for s := range order {
			order[s] = s
		}
		sort.SliceStable(order, func(a, b int) bool { return dst[order[a]] < dst[order[b]] })

		placed := false
		for _, s := range order {
			sec := sections[s]
			if sec.CurSlots < sec.MaxSlots {
				sec.pins = append(sec.pins, pin)
				sec.CurSlots++
				placed = true
				break
			}
			if !forcePinSpread {
				break
			}
		}
		if !placed {
			return false, nil
		}
	}
	return true, nil
}

// sectionDistances computes, in parallel, the HPWL from pin i's sinks
// to every section's anchor. This is the fork-join point of spec §5.1.
func sectionDistances(ctx context.Context, sections []*Section, sinks *netlist.Netlist, i int) ([]geom.DBU, error) {
	dst := make([]geom.DBU, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	for s := range sections {
		s := s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dst[s] = sinks.HPWL(i, sections[s].Anchor)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}
