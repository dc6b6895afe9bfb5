// Package calendar models arbitrary user-defined calendrical systems:
// variable month lengths, intercalary leap days, multiple eras with
// independent counting directions, and custom weekday cycles. A validated
// Schema is the frame of reference for every Date and Duration operation;
// the schema itself is immutable and safe for concurrent use.
//
// The canonical coordinate is the absolute day: a signed integer counting
// days since year 1, month 1, day 1 of the schema. All comparison and
// difference math bottoms out there.
package calendar

import (
	"sort"
	"strings"
)

// Month is one month in the year cycle.
type Month struct {
	Name string `toml:"name"`
	Days int64  `toml:"days"`
}

// Era is a named sub-range of the absolute-day timeline. StartDay is the
// first absolute day of the era. Direction +1 counts years forward from
// the era's start; -1 counts down toward the following era, the way BC
// years count down toward AD 1.
type Era struct {
	Name      string `toml:"name"`
	Symbol    string `toml:"symbol"`
	StartDay  int64  `toml:"start_day"`
	Direction int    `toml:"direction"`
}

// LeapRule inserts intercalary days into one month on a fixed cadence.
// A year qualifies when (year-Offset) is divisible by Every but not by
// Except (Except == 0 disables the exclusion). Days is how many days the
// month gains in a qualifying year.
type LeapRule struct {
	Month  int   `toml:"month"`
	Every  int64 `toml:"every"`
	Except int64 `toml:"except"`
	Offset int64 `toml:"offset"`
	Days   int64 `toml:"days"`
}

// DayCycle subdivides a day. It exists for time-of-day display and
// relative parsing; Date arithmetic never depends on it.
type DayCycle struct {
	HoursPerDay      int64 `toml:"hours_per_day"`
	MinutesPerHour   int64 `toml:"minutes_per_hour"`
	SecondsPerMinute int64 `toml:"seconds_per_minute"`
}

// SecondsPerDay returns the length of one day in seconds.
func (d DayCycle) SecondsPerDay() int64 {
	return d.HoursPerDay * d.MinutesPerHour * d.SecondsPerMinute
}

// Definition is the raw, unvalidated shape of a calendar as it arrives
// from configuration. Validate turns it into a Schema.
type Definition struct {
	Months   []Month    `toml:"months"`
	Weekdays []string   `toml:"weekdays"`
	Eras     []Era      `toml:"eras"`
	Leap     []LeapRule `toml:"leap"`
	Day      DayCycle   `toml:"day"`
}

// Schema is a validated, immutable calendar description. Construct one
// with Validate; all other functions in this package assume the schema
// they are handed has already passed validation.
type Schema struct {
	months   []Month
	weekdays []string
	eras     []Era
	leap     []LeapRule
	day      DayCycle

	baseYearDays int64 // sum of nominal month lengths
	vocab        []vocabEntry
}

// vocabEntry maps a lowercased schema name to the token it produces.
// Entries are ordered longest-first so the tokenizer is longest-match.
type vocabEntry struct {
	text string
	kind TokenKind
	idx  int
}

// Months returns the ordered month definitions.
func (s *Schema) Months() []Month { return s.months }

// Weekdays returns the ordered weekday names.
func (s *Schema) Weekdays() []string { return s.weekdays }

// Eras returns the ordered era definitions.
func (s *Schema) Eras() []Era { return s.eras }

// Day returns the day cycle.
func (s *Schema) Day() DayCycle { return s.day }

// MonthsInYear returns the number of months in one year.
func (s *Schema) MonthsInYear() int { return len(s.months) }

// DaysInWeek returns the weekday cycle length.
func (s *Schema) DaysInWeek() int64 { return int64(len(s.weekdays)) }

// leapDaysInYear returns the total intercalary days inserted in year.
func (s *Schema) leapDaysInYear(year int64) int64 {
	var total int64
	for _, r := range s.leap {
		if r.qualifies(year) {
			total += r.Days
		}
	}
	return total
}

// qualifies reports whether year gains this rule's intercalary days.
func (r LeapRule) qualifies(year int64) bool {
	if r.Every <= 0 {
		return false
	}
	if mod(year-r.Offset, r.Every) != 0 {
		return false
	}
	if r.Except > 0 && mod(year-r.Offset, r.Except) == 0 {
		return false
	}
	return true
}

// countQualifying returns how many years in [lo, hi] qualify for r.
// Closed form, so jumps spanning millions of years stay O(rules).
func (r LeapRule) countQualifying(lo, hi int64) int64 {
	if hi < lo || r.Every <= 0 {
		return 0
	}
	n := multiplesIn(lo-r.Offset, hi-r.Offset, r.Every)
	if r.Except > 0 {
		n -= multiplesIn(lo-r.Offset, hi-r.Offset, r.Except)
	}
	return n
}

// multiplesIn counts multiples of step in the inclusive range [lo, hi].
func multiplesIn(lo, hi, step int64) int64 {
	return floorDiv(hi, step) - floorDiv(lo-1, step)
}

// DaysInYear returns the effective length of year, leap days included.
func (s *Schema) DaysInYear(year int64) int64 {
	return s.baseYearDays + s.leapDaysInYear(year)
}

// MonthLength returns the effective length of the 1-indexed month in
// year, accounting for any leap extension.
func (s *Schema) MonthLength(year int64, month int) int64 {
	days := s.months[month-1].Days
	for _, r := range s.leap {
		if r.Month == month && r.qualifies(year) {
			days += r.Days
		}
	}
	return days
}

// daysBeforeMonth returns the number of days in year that precede the
// 1-indexed month.
func (s *Schema) daysBeforeMonth(year int64, month int) int64 {
	var days int64
	for m := 1; m < month; m++ {
		days += s.MonthLength(year, m)
	}
	return days
}

// daysBeforeYear returns the absolute day of year's first day, i.e. the
// total days occupied by all years between year 1 and year (exclusive).
// Negative for years before year 1.
func (s *Schema) daysBeforeYear(year int64) int64 {
	if year >= 1 {
		days := s.baseYearDays * (year - 1)
		for _, r := range s.leap {
			days += r.Days * r.countQualifying(1, year-1)
		}
		return days
	}
	days := s.baseYearDays * (1 - year)
	for _, r := range s.leap {
		days += r.Days * r.countQualifying(year, 0)
	}
	return -days
}

// yearOfAbsoluteDay locates the year containing abs. It estimates from
// the nominal year length and corrects; leap drift is at most a few days
// per rule cadence, so the correction loop terminates almost immediately.
func (s *Schema) yearOfAbsoluteDay(abs int64) int64 {
	year := floorDiv(abs, s.baseYearDays) + 1
	for abs < s.daysBeforeYear(year) {
		year--
	}
	for abs >= s.daysBeforeYear(year+1) {
		year++
	}
	return year
}

// eraOf returns the index of the era containing abs. Days before the
// first era's start still belong to the first era, counted backward.
func (s *Schema) eraOf(abs int64) int {
	era := 0
	for i := range s.eras {
		if s.eras[i].StartDay <= abs {
			era = i
		}
	}
	return era
}

// eraByName looks up an era by name or symbol, case-insensitively.
func (s *Schema) eraByName(name string) (int, bool) {
	for i, e := range s.eras {
		if strings.EqualFold(e.Name, name) || strings.EqualFold(e.Symbol, name) {
			return i, true
		}
	}
	return 0, false
}

// buildVocab assembles the parse vocabulary from the schema's names:
// months, weekdays, era names and symbols, sorted longest-first so that
// ambiguous prefixes resolve to the longest match.
func (s *Schema) buildVocab() {
	for i, m := range s.months {
		s.vocab = append(s.vocab, vocabEntry{strings.ToLower(m.Name), TokenMonthName, i + 1})
	}
	for i, w := range s.weekdays {
		s.vocab = append(s.vocab, vocabEntry{strings.ToLower(w), TokenWeekdayName, i + 1})
	}
	for i, e := range s.eras {
		s.vocab = append(s.vocab, vocabEntry{strings.ToLower(e.Name), TokenEraName, i})
		if e.Symbol != "" {
			s.vocab = append(s.vocab, vocabEntry{strings.ToLower(e.Symbol), TokenEraName, i})
		}
	}
	sort.SliceStable(s.vocab, func(a, b int) bool {
		return len(s.vocab[a].text) > len(s.vocab[b].text)
	})
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod is the floored modulus; the result shares b's sign.
func mod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
