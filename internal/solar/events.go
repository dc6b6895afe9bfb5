package solar

import (
	"math"

	"github.com/google/uuid"

	"github.com/papapumpkin/almanac/internal/calendar"
)

// EventKind classifies a celestial event.
type EventKind string

const (
	// EventRise is the primary light source clearing the horizon.
	EventRise EventKind = "rise"
	// EventSet is the primary light source dropping below it.
	EventSet EventKind = "set"
	// EventPhase is a satellite crossing a phase boundary.
	EventPhase EventKind = "phase"
	// EventConjunction is two bodies sharing phase within tolerance.
	EventConjunction EventKind = "conjunction"
)

// Event is one celestial occurrence. Time is the abstract absolute-day
// timestamp (fractional days). Fraction is the cycle fraction of the
// subject body at the event; Phase names it for phase boundaries.
type Event struct {
	Body     string
	Other    string // second body, conjunctions only
	Kind     EventKind
	Time     float64
	Fraction float64
	Phase    Phase
}

// Options tunes a scan.
type Options struct {
	// Tolerance is the maximum phase separation for two bodies with
	// identical cycle rates to count as permanently conjunct. Bodies
	// with different rates align at exact closed-form instants.
	Tolerance float64
}

// DefaultTolerance is used when Options.Tolerance is zero.
const DefaultTolerance = 0.02

// Scan walks celestial events over [start, end) in ascending timestamp
// order. It is a pure cursor over closed-form event streams: creating a
// scan does no work proportional to the range, abandoning one costs
// nothing, and a new scan can be started from any timestamp.
type Scan struct {
	streams []cyclic
	end     float64
	emitted map[eventKey]bool
}

// eventKey identifies an emission by body ID rather than display name,
// so identity survives whatever a schema calls its bodies.
type eventKey struct {
	body, other uuid.UUID
	kind        EventKind
	time        float64
}

// cyclic is one periodic event stream: an arithmetic progression of
// timestamps with a label index. Streams never enumerate days; the next
// candidate is always computed directly.
type cyclic struct {
	body, other     string
	bodyID, otherID uuid.UUID
	kind            EventKind
	next            float64
	step            float64
	idx             int64                   // boundary index, labels phase streams
	subdiv          int64                   // phase subdivisions; 0 for rise/set/conjunction
	fracOf          func(t float64) float64 // fraction at an event time, conjunctions
	done            bool
}

func (c *cyclic) event() Event {
	ev := Event{Body: c.body, Other: c.other, Kind: c.kind, Time: c.next}
	if c.subdiv > 0 {
		f := float64(((c.idx%c.subdiv)+c.subdiv)%c.subdiv) / float64(c.subdiv)
		ev.Fraction = f
		ev.Phase = PhaseOf(f)
	} else if c.fracOf != nil {
		ev.Fraction = c.fracOf(c.next)
	}
	return ev
}

func (c *cyclic) advance() {
	if c.step <= 0 {
		c.done = true
		return
	}
	c.next += c.step
	c.idx++
}

// Events returns a scan of all celestial events between two dates of
// the calendar, [from, to) in absolute days. The calendar schema only
// anchors the dates; the solar schema is never mutated.
func Events(solar *Schema, cal *calendar.Schema, from, to calendar.Date, opts Options) *Scan {
	return ScanRange(solar, float64(from.AbsoluteDay(cal)), float64(to.AbsoluteDay(cal)), opts)
}

// ScanRange returns a scan over [start, end) in absolute days. It is
// the restart point: to resume an abandoned scan, call ScanRange again
// with the last consumed timestamp.
func ScanRange(solar *Schema, start, end float64, opts Options) *Scan {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	s := &Scan{end: end, emitted: map[eventKey]bool{}}
	primary, hasPrimary := solar.Primary()

	if hasPrimary {
		p := float64(primary.PeriodDays)
		shift := float64(primary.ShiftDays)
		s.addStream(cyclic{
			body: primary.Name, bodyID: primary.ID, kind: EventRise,
			next: firstOnOrAfter(start, p, -shift), step: p,
		})
		s.addStream(cyclic{
			body: primary.Name, bodyID: primary.ID, kind: EventSet,
			next: firstOnOrAfter(start, p, -shift+p/2), step: p,
		})
	}

	for _, b := range solar.Bodies() {
		if b.Kind != KindSatellite {
			continue
		}
		sub := int64(b.Subdivisions)
		if sub == 0 {
			sub = 4
		}
		step := float64(b.PeriodDays) / float64(sub)
		shift := float64(b.ShiftDays)
		first := firstOnOrAfter(start, step, -shift)
		s.addStream(cyclic{
			body: b.Name, bodyID: b.ID, kind: EventPhase,
			next: first, step: step,
			idx: int64(math.Round((first + shift) / step)), subdiv: sub,
		})
	}

	bodies := solar.Bodies()
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			s.addConjunction(bodies[i], bodies[j], start, tol)
		}
	}
	return s
}

// addConjunction sets up the alignment stream for one body pair. The
// phase separation evolves linearly at rate 1/pa - 1/pb, so alignment
// instants are the closed-form solutions of rate*t + offset = k; no
// per-day scanning happens even for very long periods.
func (s *Scan) addConjunction(a, b Body, start, tol float64) {
	rate := 1/float64(a.PeriodDays) - 1/float64(b.PeriodDays)
	offset := float64(a.ShiftDays)/float64(a.PeriodDays) - float64(b.ShiftDays)/float64(b.PeriodDays)

	if rate == 0 {
		// Identical rates never drift: the pair is either permanently
		// conjunct or never aligned. Report the former once, at the
		// start of the range.
		sep := math.Abs(offset - math.Round(offset))
		if sep <= tol {
			s.addStream(cyclic{
				body: a.Name, other: b.Name, bodyID: a.ID, otherID: b.ID,
				kind: EventConjunction,
				next: start, step: 0,
				fracOf: func(t float64) float64 { return PhaseFraction(a, t) },
			})
		}
		return
	}
	if rate < 0 {
		rate, offset = -rate, -offset
	}

	k := math.Ceil(start*rate + offset)
	first := (k - offset) / rate
	s.addStream(cyclic{
		body: a.Name, other: b.Name, bodyID: a.ID, otherID: b.ID,
		kind: EventConjunction,
		next: first, step: 1 / rate,
		fracOf: func(t float64) float64 { return PhaseFraction(a, t) },
	})
}

func (s *Scan) addStream(c cyclic) {
	s.streams = append(s.streams, c)
}

// firstOnOrAfter returns the smallest phase*step + base >= start for
// integer phase counts, i.e. the first progression member in range.
func firstOnOrAfter(start, step, base float64) float64 {
	if step <= 0 {
		return start
	}
	k := math.Ceil((start - base) / step)
	return base + k*step
}

// Next returns the earliest unconsumed event, in ascending timestamp
// order across all streams. Ties break by body then kind so the order
// is deterministic. The second return is false once the range is
// exhausted.
func (s *Scan) Next() (Event, bool) {
	for {
		best := -1
		for i := range s.streams {
			c := &s.streams[i]
			if c.done || c.next >= s.end {
				continue
			}
			if best < 0 || less(c, &s.streams[best]) {
				best = i
			}
		}
		if best < 0 {
			return Event{}, false
		}
		c := &s.streams[best]
		ev := c.event()
		c.advance()

		// No event is produced twice for the same (body, kind, time)
		// within one query; bodies are keyed by ID.
		key := eventKey{c.bodyID, c.otherID, ev.Kind, ev.Time}
		if s.emitted[key] {
			continue
		}
		s.emitted[key] = true
		return ev, true
	}
}

// Collect drains the scan into a slice. Convenience for callers that
// want the whole (finite) range at once.
func (s *Scan) Collect() []Event {
	var out []Event
	for {
		ev, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func less(a, b *cyclic) bool {
	if a.next != b.next {
		return a.next < b.next
	}
	if a.body != b.body {
		return a.body < b.body
	}
	return a.kind < b.kind
}
