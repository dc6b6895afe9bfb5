package calendar

import "fmt"

// Date is a validated point in calendrical time. The weekday and era are
// derivable from the other coordinates but cached at construction for
// O(1) access. A Date is conceptually tied to the Schema it was built
// from; the schema is passed explicitly to every operation and handing a
// Date to the wrong schema is a programming error, not a recoverable
// condition.
//
// Dates are immutable values: arithmetic always returns a new Date.
type Date struct {
	year    int64
	month   int // 1-indexed
	day     int64
	weekday int // 0-indexed into the weekday cycle
	era     int // index into the schema's era list, 0 when none
}

// NewDate constructs a Date from canonical coordinates: signed year,
// 1-indexed month and day. Coordinates outside the schema's bounds fail
// with a *DateError; construction never clamps.
func NewDate(s *Schema, year int64, month int, day int64) (Date, error) {
	if month < 1 || month > s.MonthsInYear() {
		return Date{}, &DateError{Unit: "month", Value: int64(month), Err: ErrOutOfRange}
	}
	if day < 1 || day > s.MonthLength(year, month) {
		return Date{}, &DateError{Unit: "day", Value: day, Err: ErrOutOfRange}
	}
	d := Date{year: year, month: month, day: day}
	abs := d.rawAbsoluteDay(s)
	d.weekday = int(mod(abs, s.DaysInWeek()))
	d.era = s.eraOf(abs)
	return d, nil
}

// NewEraDate constructs a Date from an era-relative year. The era is
// named by its name or symbol; the year counts within the era according
// to its direction.
func NewEraDate(s *Schema, era string, year int64, month int, day int64) (Date, error) {
	idx, ok := s.eraByName(era)
	if !ok {
		return Date{}, &DateError{Unit: "era", Value: 0, Err: ErrUnknownEra}
	}
	return NewDate(s, s.canonicalYear(idx, year), month, day)
}

// canonicalYear converts an era-relative year into the schema's signed
// year coordinate.
func (s *Schema) canonicalYear(era int, eraYear int64) int64 {
	start := s.yearOfAbsoluteDay(s.eras[era].StartDay)
	if s.eras[era].Direction >= 0 {
		return start + eraYear - 1
	}
	// Backward eras count down toward the next era's first year; year 1
	// is the last year before the successor begins. The validator
	// guarantees a successor exists.
	next := s.yearOfAbsoluteDay(s.eras[era+1].StartDay)
	return next - eraYear
}

// eraYear converts the canonical year into the cached era's counting
// direction for display.
func (s *Schema) eraYear(era int, year int64) int64 {
	if len(s.eras) == 0 {
		return year
	}
	start := s.yearOfAbsoluteDay(s.eras[era].StartDay)
	if s.eras[era].Direction >= 0 {
		return year - start + 1
	}
	next := s.yearOfAbsoluteDay(s.eras[era+1].StartDay)
	return next - year
}

// Year returns the canonical signed year.
func (d Date) Year() int64 { return d.year }

// Month returns the 1-indexed month.
func (d Date) Month() int { return d.month }

// Day returns the 1-indexed day of the month.
func (d Date) Day() int64 { return d.day }

// Weekday returns the 0-indexed position in the weekday cycle.
func (d Date) Weekday() int { return d.weekday }

// EraIndex returns the index of the era containing the date.
func (d Date) EraIndex() int { return d.era }

// EraYear returns the year as counted inside the date's era.
func (d Date) EraYear(s *Schema) int64 { return s.eraYear(d.era, d.year) }

// MonthName returns the schema name of the date's month.
func (d Date) MonthName(s *Schema) string {
	d.check(s)
	return s.months[d.month-1].Name
}

// WeekdayName returns the schema name of the date's weekday.
func (d Date) WeekdayName(s *Schema) string {
	if d.weekday >= len(s.weekdays) {
		panic(schemaMismatch(d))
	}
	return s.weekdays[d.weekday]
}

// AbsoluteDay converts the date to its canonical signed day coordinate:
// days since year 1, month 1, day 1. The mapping is bijective over valid
// Dates and is the basis for all comparison and difference math.
func (d Date) AbsoluteDay(s *Schema) int64 {
	d.check(s)
	return d.rawAbsoluteDay(s)
}

func (d Date) rawAbsoluteDay(s *Schema) int64 {
	return s.daysBeforeYear(d.year) + s.daysBeforeMonth(d.year, d.month) + d.day - 1
}

// FromAbsoluteDay is the inverse of AbsoluteDay.
func FromAbsoluteDay(s *Schema, abs int64) Date {
	year := s.yearOfAbsoluteDay(abs)
	rem := abs - s.daysBeforeYear(year)
	month := 1
	for rem >= s.MonthLength(year, month) {
		rem -= s.MonthLength(year, month)
		month++
	}
	return Date{
		year:    year,
		month:   month,
		day:     rem + 1,
		weekday: int(mod(abs, s.DaysInWeek())),
		era:     s.eraOf(abs),
	}
}

// Compare orders two dates built from the same schema: -1, 0 or +1 as a
// sorts before, equal to, or after b.
func Compare(s *Schema, a, b Date) int {
	da, db := a.AbsoluteDay(s), b.AbsoluteDay(s)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

// check panics when the date's cached coordinates are impossible under
// s, which means the caller mixed schemas. Tolerating the mix would
// silently corrupt arithmetic, so it fails loudly instead.
func (d Date) check(s *Schema) {
	if d.month < 1 || d.month > s.MonthsInYear() || d.day < 1 || d.day > s.MonthLength(d.year, d.month) {
		panic(schemaMismatch(d))
	}
}

func schemaMismatch(d Date) string {
	return fmt.Sprintf("calendar: date %d-%02d-%02d was not built from this schema", d.year, d.month, d.day)
}
