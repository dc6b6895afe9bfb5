package calendar

import (
	"fmt"
	"strings"
)

// probeWindow is the span of years swept when sanity-checking leap rules.
// It comfortably covers the combined cadence of real-world style rules
// (4/100/400) and anything a configuration is likely to declare.
const probeWindow = 400

// Validate checks a raw Definition for internal consistency and returns
// an immutable Schema. Every violation found is reported together in a
// single *SchemaError; a nil error guarantees the schema upholds all
// invariants the rest of the package relies on.
func Validate(def Definition) (*Schema, error) {
	var violations []Violation
	add := func(cat ViolationCategory, field string, err error) {
		violations = append(violations, Violation{Category: cat, Field: field, Err: err})
	}

	if len(def.Months) == 0 {
		add(CatMonths, "months", ErrNoMonths)
	}
	seen := map[string]string{}
	for i, m := range def.Months {
		field := fmt.Sprintf("months[%d]", i)
		if m.Days < 1 {
			add(CatMonths, field, ErrMonthLength)
		}
		if m.Name == "" {
			continue
		}
		key := strings.ToLower(m.Name)
		if prev, ok := seen[key]; ok {
			add(CatMonths, field, fmt.Errorf("%w: %q collides with %s", ErrDuplicateName, m.Name, prev))
		}
		seen[key] = field
	}

	if len(def.Weekdays) == 0 {
		add(CatWeekdays, "weekdays", ErrNoWeekdays)
	}
	for i, w := range def.Weekdays {
		field := fmt.Sprintf("weekdays[%d]", i)
		key := strings.ToLower(w)
		if prev, ok := seen[key]; ok {
			add(CatWeekdays, field, fmt.Errorf("%w: %q collides with %s", ErrDuplicateName, w, prev))
		}
		seen[key] = field
	}

	for i, e := range def.Eras {
		field := fmt.Sprintf("eras[%d]", i)
		if e.Direction != 1 && e.Direction != -1 {
			add(CatEras, field+".direction", ErrEraDirection)
		}
		if i > 0 && def.Eras[i-1].StartDay >= e.StartDay {
			add(CatEras, field+".start_day", ErrEraOrder)
		}
		if e.Direction == -1 && i == len(def.Eras)-1 {
			add(CatEras, field, ErrEraUnbounded)
		}
	}

	for i, r := range def.Leap {
		field := fmt.Sprintf("leap[%d]", i)
		if r.Month < 1 || r.Month > len(def.Months) {
			add(CatLeap, field+".month", ErrLeapMonth)
		}
		if r.Every < 1 {
			add(CatLeap, field+".every", ErrLeapCadence)
		}
		if r.Days < 1 {
			add(CatLeap, field+".days", ErrLeapDays)
		}
	}

	if def.Day == (DayCycle{}) {
		// Unspecified day cycle defaults to 24x60x60.
		def.Day = DayCycle{HoursPerDay: 24, MinutesPerHour: 60, SecondsPerMinute: 60}
	}
	if def.Day.HoursPerDay < 1 || def.Day.MinutesPerHour < 1 || def.Day.SecondsPerMinute < 1 {
		add(CatDay, "day", ErrDayCycle)
	}

	if len(violations) > 0 {
		return nil, &SchemaError{Violations: violations}
	}

	s := &Schema{
		months:   append([]Month(nil), def.Months...),
		weekdays: append([]string(nil), def.Weekdays...),
		eras:     append([]Era(nil), def.Eras...),
		leap:     append([]LeapRule(nil), def.Leap...),
		day:      def.Day,
	}
	for _, m := range s.months {
		s.baseYearDays += m.Days
	}

	// Sweep a window of years to confirm the leap rules never shrink a
	// month or a year. Rules only ever add days, so this is a guard
	// against future rule shapes rather than today's arithmetic.
	for year := int64(1); year <= probeWindow; year++ {
		for m := 1; m <= len(s.months); m++ {
			if s.MonthLength(year, m) < s.months[m-1].Days {
				return nil, &SchemaError{Violations: []Violation{{
					Category: CatLeap,
					Field:    fmt.Sprintf("leap (year %d, month %d)", year, m),
					Err:      ErrLeapDays,
				}}}
			}
		}
	}

	s.buildVocab()
	return s, nil
}
