package calendar

// Duration is a signed, calendar-relative span. Components are applied
// largest-unit first during addition (years, then months, then days);
// because month lengths are irregular the components are not
// interchangeable, and a Duration is interpreted against whichever
// schema is passed to the arithmetic call.
type Duration struct {
	Years  int64
	Months int64
	Days   int64
}

// Negate returns the duration with every component sign-flipped.
// Subtraction is addition of a negated Duration.
func (d Duration) Negate() Duration {
	return Duration{Years: -d.Years, Months: -d.Months, Days: -d.Days}
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Days == 0
}

// DaysDuration returns a pure day-unit span. Differences between dates
// are always expressed this way, since decomposing a day count into
// irregular months is not unique.
func DaysDuration(days int64) Duration {
	return Duration{Days: days}
}
