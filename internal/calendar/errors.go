package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for schema validation and date construction.
var (
	// ErrNoMonths indicates the month list is empty.
	ErrNoMonths = errors.New("calendar has no months")
	// ErrMonthLength indicates a month with a non-positive length.
	ErrMonthLength = errors.New("month length must be at least one day")
	// ErrNoWeekdays indicates an empty weekday cycle.
	ErrNoWeekdays = errors.New("weekday cycle must have at least one day")
	// ErrDuplicateName indicates two vocabulary names collide.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrEraOrder indicates era start days are not strictly increasing.
	ErrEraOrder = errors.New("era start days must be strictly increasing")
	// ErrEraDirection indicates an era direction other than +1 or -1.
	ErrEraDirection = errors.New("era direction must be +1 or -1")
	// ErrEraUnbounded indicates a backward-counting era with no successor
	// to count down toward.
	ErrEraUnbounded = errors.New("backward era must be followed by another era")
	// ErrLeapMonth indicates a leap rule referencing a month that does not exist.
	ErrLeapMonth = errors.New("leap rule references unknown month")
	// ErrLeapCadence indicates a leap rule with a non-positive cadence.
	ErrLeapCadence = errors.New("leap rule cadence must be positive")
	// ErrLeapDays indicates a leap rule inserting a non-positive day count.
	ErrLeapDays = errors.New("leap rule must insert at least one day")
	// ErrDayCycle indicates a non-positive day subdivision.
	ErrDayCycle = errors.New("day cycle units must be positive")
	// ErrOutOfRange indicates date coordinates outside calendar bounds.
	ErrOutOfRange = errors.New("out of range")
	// ErrUnknownEra indicates an era name not present in the schema.
	ErrUnknownEra = errors.New("unknown era")
)

// ViolationCategory classifies a schema violation for programmatic handling.
type ViolationCategory string

const (
	// CatMonths covers month list problems.
	CatMonths ViolationCategory = "months"
	// CatWeekdays covers weekday cycle problems.
	CatWeekdays ViolationCategory = "weekdays"
	// CatEras covers era ordering and direction problems.
	CatEras ViolationCategory = "eras"
	// CatLeap covers leap rule problems.
	CatLeap ViolationCategory = "leap"
	// CatDay covers day cycle problems.
	CatDay ViolationCategory = "day"
)

// Violation records a single schema problem with its location.
type Violation struct {
	Category ViolationCategory
	Field    string // e.g. "months[2]", "eras[0].direction"
	Err      error
}

// Error returns a human-readable string including the field context.
func (v Violation) Error() string {
	if v.Field != "" {
		return v.Field + ": " + v.Err.Error()
	}
	return v.Err.Error()
}

// Unwrap returns the underlying sentinel for errors.Is.
func (v Violation) Unwrap() error { return v.Err }

// SchemaError aggregates every violation found during validation, so
// configuration authors see all problems at once rather than fixing them
// one failed run at a time.
type SchemaError struct {
	Violations []Violation
}

// Error joins all violations into one message.
func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return "invalid calendar: " + strings.Join(msgs, "; ")
}

// Is reports whether any violation wraps target, so callers can probe an
// aggregated error with the package sentinels.
func (e *SchemaError) Is(target error) bool {
	for _, v := range e.Violations {
		if errors.Is(v.Err, target) {
			return true
		}
	}
	return false
}

// DateError reports date coordinates that do not exist in the calendar.
type DateError struct {
	Unit  string // "era", "year", "month" or "day"
	Value int64
	Err   error
}

// Error returns a human-readable description of the bad coordinate.
func (e *DateError) Error() string {
	return fmt.Sprintf("%s %d is %s", e.Unit, e.Value, e.Err.Error())
}

// Unwrap returns the underlying sentinel (usually ErrOutOfRange).
func (e *DateError) Unwrap() error { return e.Err }
