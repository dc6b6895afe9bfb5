// Package solar models a parametrized solar system in the same abstract
// day unit as the calendar: bodies with independent orbital periods and
// phase offsets, one optional primary light source, and satellites whose
// phases are read against it. The engine computes phases at a moment and
// enumerates celestial events over a range as a lazy, restartable
// sequence.
//
// Everything here is pure computation over a validated, immutable
// Schema; nothing blocks or performs I/O.
package solar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// BodyKind distinguishes the light source from everything orbiting it.
type BodyKind string

const (
	// KindPrimary is the system's light source; its cycle defines day
	// and night.
	KindPrimary BodyKind = "primary"
	// KindSatellite is a reflective body whose phase is read against
	// the primary.
	KindSatellite BodyKind = "satellite"
)

// Body is one celestial body. PeriodDays is the length of its cycle in
// abstract days; ShiftDays is its phase offset at the epoch (absolute
// day zero). Subdivisions controls how many phase boundaries a
// satellite produces per cycle (0 means quarters).
type Body struct {
	ID           uuid.UUID `toml:"-"`
	Name         string    `toml:"name"`
	Kind         BodyKind  `toml:"kind"`
	PeriodDays   int64     `toml:"period_days"`
	ShiftDays    int64     `toml:"shift_days"`
	Subdivisions int       `toml:"subdivisions"`
}

// Definition is the raw, unvalidated body list from configuration.
type Definition struct {
	Bodies []Body `toml:"bodies"`
}

// Schema is a validated, immutable solar system description.
type Schema struct {
	bodies  []Body
	primary int // index into bodies, -1 when the system has no light source
}

// Sentinel errors for solar system validation.
var (
	// ErrNoBodies indicates an empty body list.
	ErrNoBodies = errors.New("solar system has no bodies")
	// ErrPeriod indicates a non-positive orbital period.
	ErrPeriod = errors.New("orbital period must be strictly positive")
	// ErrBodyKind indicates an unrecognized body kind.
	ErrBodyKind = errors.New("unknown body kind")
	// ErrManyPrimaries indicates more than one primary light source.
	ErrManyPrimaries = errors.New("at most one primary light source is allowed")
	// ErrDuplicateBody indicates two bodies sharing a name.
	ErrDuplicateBody = errors.New("duplicate body name")
	// ErrSubdivisions indicates a negative phase subdivision count.
	ErrSubdivisions = errors.New("subdivisions must not be negative")
)

// SchemaError aggregates every violation found during validation.
type SchemaError struct {
	Violations []error
}

// Error joins all violations into one message.
func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return "invalid solar system: " + strings.Join(msgs, "; ")
}

// Is reports whether any violation wraps target.
func (e *SchemaError) Is(target error) bool {
	for _, v := range e.Violations {
		if errors.Is(v, target) {
			return true
		}
	}
	return false
}

// Validate checks a Definition and returns an immutable Schema. Every
// violation is reported together. Bodies without an ID are assigned one.
func Validate(def Definition) (*Schema, error) {
	var violations []error

	if len(def.Bodies) == 0 {
		violations = append(violations, ErrNoBodies)
	}
	primary := -1
	seen := map[string]bool{}
	for i, b := range def.Bodies {
		if b.PeriodDays <= 0 {
			violations = append(violations, fmt.Errorf("body %q: %w", b.Name, ErrPeriod))
		}
		if b.Subdivisions < 0 {
			violations = append(violations, fmt.Errorf("body %q: %w", b.Name, ErrSubdivisions))
		}
		key := strings.ToLower(b.Name)
		if seen[key] {
			violations = append(violations, fmt.Errorf("%w: %q", ErrDuplicateBody, b.Name))
		}
		seen[key] = true

		switch b.Kind {
		case KindPrimary:
			if primary >= 0 {
				violations = append(violations, fmt.Errorf("body %q: %w", b.Name, ErrManyPrimaries))
			}
			primary = i
		case KindSatellite:
		default:
			violations = append(violations, fmt.Errorf("body %q: %w", b.Name, ErrBodyKind))
		}
	}

	if len(violations) > 0 {
		return nil, &SchemaError{Violations: violations}
	}

	s := &Schema{bodies: append([]Body(nil), def.Bodies...), primary: primary}
	for i := range s.bodies {
		if s.bodies[i].ID == uuid.Nil {
			s.bodies[i].ID = uuid.New()
		}
	}
	return s, nil
}

// Bodies returns the validated body list.
func (s *Schema) Bodies() []Body { return s.bodies }

// Primary returns the light source, if the system has one.
func (s *Schema) Primary() (Body, bool) {
	if s.primary < 0 {
		return Body{}, false
	}
	return s.bodies[s.primary], true
}

// PhaseFraction returns where body b is in its cycle at absolute time t
// (fractional abstract days), in [0, 1). The phase offset is anchored at
// the epoch, so satellites read as their offset relative to the primary.
func PhaseFraction(b Body, t float64) float64 {
	f := math.Mod((t+float64(b.ShiftDays))/float64(b.PeriodDays), 1)
	if f < 0 {
		f += 1
	}
	return f
}
