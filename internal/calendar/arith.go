package calendar

// Add applies a Duration to a Date: whole years first, then whole
// months, then days. After each of the first two steps the day is
// re-resolved against the landing month's effective length; a day that
// does not exist there (a leap day landing in a common year) rolls
// forward into the following month rather than clamping, so results are
// deterministic and never silently lose a day. The final day step is
// exact, since days are the schema's finest uniform unit.
func Add(s *Schema, d Date, dur Duration) Date {
	d.check(s)

	year := d.year + dur.Years
	month := d.month
	day := d.day

	months := int64(month-1) + dur.Months
	year += floorDiv(months, int64(s.MonthsInYear()))
	month = int(mod(months, int64(s.MonthsInYear()))) + 1

	// Forward-roll a day beyond the landing month's effective length.
	for day > s.MonthLength(year, month) {
		day -= s.MonthLength(year, month)
		month++
		if month > s.MonthsInYear() {
			month = 1
			year++
		}
	}

	resolved, err := NewDate(s, year, month, day)
	if err != nil {
		// The roll above guarantees in-range coordinates; reaching this
		// means the input date never belonged to s.
		panic(schemaMismatch(d))
	}
	if dur.Days == 0 {
		return resolved
	}
	return FromAbsoluteDay(s, resolved.AbsoluteDay(s)+dur.Days)
}

// Sub subtracts a Duration from a Date. It is exactly Add with every
// component negated.
func Sub(s *Schema, d Date, dur Duration) Date {
	return Add(s, d, dur.Negate())
}

// Difference returns a − b as a pure day-unit Duration. A month/year
// decomposition is deliberately not attempted: month lengths are
// irregular, so no unique decomposition exists. Callers that need
// calendar-unit deltas walk Dates explicitly.
func Difference(s *Schema, a, b Date) Duration {
	return DaysDuration(a.AbsoluteDay(s) - b.AbsoluteDay(s))
}
