package world

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/almanac/internal/calendar"
)

// Moment is a point in world time at second resolution: absolute
// seconds since the calendar's zero point. The day is the calendar's
// finest arithmetic unit; time of day is display state layered on top
// and never participates in Date invariants.
type Moment struct {
	Seconds int64
}

// Date returns the calendar date containing the moment.
func (m Moment) Date(cal *calendar.Schema) calendar.Date {
	return calendar.FromAbsoluteDay(cal, floorDiv(m.Seconds, cal.Day().SecondsPerDay()))
}

// TimeOfDay returns the hour, minute and second within the day.
func (m Moment) TimeOfDay(cal *calendar.Schema) (hour, minute, second int64) {
	day := cal.Day()
	rem := mod(m.Seconds, day.SecondsPerDay())
	hour = rem / (day.MinutesPerHour * day.SecondsPerMinute)
	rem -= hour * day.MinutesPerHour * day.SecondsPerMinute
	minute = rem / day.SecondsPerMinute
	second = rem - minute*day.SecondsPerMinute
	return hour, minute, second
}

// Clock renders the time of day as zero-padded h:m:s.
func (m Moment) Clock(cal *calendar.Schema) string {
	h, mi, s := m.TimeOfDay(cal)
	return fmt.Sprintf("%02d:%02d:%02d", h, mi, s)
}

// AddDuration moves the moment by a calendar duration, preserving the
// time of day (forward-rolling through leap boundaries the way Date
// arithmetic does).
func (m Moment) AddDuration(cal *calendar.Schema, dur calendar.Duration) Moment {
	date := m.Date(cal)
	tod := mod(m.Seconds, cal.Day().SecondsPerDay())
	next := calendar.Add(cal, date, dur)
	return Moment{Seconds: next.AbsoluteDay(cal)*cal.Day().SecondsPerDay() + tod}
}

// AddSeconds moves the moment by raw seconds.
func (m Moment) AddSeconds(s int64) Moment {
	return Moment{Seconds: m.Seconds + s}
}

// AtDate jumps the moment to a date, preserving the time of day.
func (m Moment) AtDate(cal *calendar.Schema, d calendar.Date) Moment {
	tod := mod(m.Seconds, cal.Day().SecondsPerDay())
	return Moment{Seconds: d.AbsoluteDay(cal)*cal.Day().SecondsPerDay() + tod}
}

// waitUntil advances to the next occurrence of the given second-of-day,
// rolling into the next day when the target has already passed.
func (m Moment) waitUntil(cal *calendar.Schema, target int64) Moment {
	perDay := cal.Day().SecondsPerDay()
	tod := mod(m.Seconds, perDay)
	delta := target - tod
	if delta <= 0 {
		delta += perDay
	}
	return Moment{Seconds: m.Seconds + delta}
}

// Advance interprets an expression against the world's calendar and
// moves the moment. Beyond the calendar grammar's dates and durations
// it accepts the table-side idioms:
//
//	long rest       exactly eight hours
//	short rest      exactly four hours
//	midday, midnight
//	8am, 2pm        next occurrence of that hour
func (m Moment) Advance(cal *calendar.Schema, expr string) (Moment, error) {
	day := cal.Day()
	hourSecs := day.MinutesPerHour * day.SecondsPerMinute

	switch strings.ToLower(strings.TrimSpace(expr)) {
	case "long rest":
		return m.AddSeconds(8 * hourSecs), nil
	case "short rest":
		return m.AddSeconds(4 * hourSecs), nil
	case "midday":
		return m.waitUntil(cal, day.SecondsPerDay()/2), nil
	case "midnight":
		return m.waitUntil(cal, 0), nil
	}

	if target, ok := parseClockHour(expr, day.HoursPerDay); ok {
		return m.waitUntil(cal, target*hourSecs), nil
	}

	res, err := calendar.Parse(cal, expr)
	if err != nil {
		return Moment{}, err
	}
	if res.Kind == calendar.ResultDate {
		return m.AtDate(cal, res.Date), nil
	}
	return m.AddDuration(cal, res.Duration), nil
}

// parseClockHour recognizes "8am" / "2pm" style hours against the
// calendar's day cycle; the am/pm split is half the cycle.
func parseClockHour(expr string, hoursPerDay int64) (int64, bool) {
	s := strings.ToLower(strings.TrimSpace(expr))
	var pm bool
	switch {
	case strings.HasSuffix(s, "am"):
	case strings.HasSuffix(s, "pm"):
		pm = true
	default:
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s[:len(s)-2]), 10, 64)
	if err != nil {
		return 0, false
	}
	half := hoursPerDay / 2
	if half == 0 || n < 1 || n > half {
		return 0, false
	}
	n = n % half // the half-cycle's last hour reads as 0 ("12am" is midnight)
	if pm {
		n += half
	}
	return n, true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
