package calendar

import (
	"fmt"
	"strings"
)

// CanonicalDate is the round-trip format spec: for every valid Date d,
// ParseDate(s, Format(s, d, CanonicalDate)) == d.
const CanonicalDate = "%Y-%m-%d"

// LongDate renders "12 Frostfall 1101 AC" style dates, era-relative.
const LongDate = "%-d %B %y %e"

// Format renders a Date according to a directive spec. Formatting is
// deterministic and total for valid inputs. Directives:
//
//	%Y  canonical signed year, zero-padded to four digits
//	%y  era-relative year
//	%m  month number, zero-padded to two digits
//	%d  day number, zero-padded to two digits
//	%-d day number, unpadded
//	%B  month name
//	%A  weekday name
//	%e  era symbol (era name when no symbol is set)
//	%%  literal percent
//
// Unknown directives are emitted verbatim.
func Format(s *Schema, d Date, spec string) string {
	var b strings.Builder
	for i := 0; i < len(spec); i++ {
		if spec[i] != '%' || i == len(spec)-1 {
			b.WriteByte(spec[i])
			continue
		}
		i++
		switch spec[i] {
		case 'Y':
			writePaddedYear(&b, d.Year())
		case 'y':
			fmt.Fprintf(&b, "%d", d.EraYear(s))
		case 'm':
			fmt.Fprintf(&b, "%02d", d.Month())
		case 'd':
			fmt.Fprintf(&b, "%02d", d.Day())
		case '-':
			if i < len(spec)-1 && spec[i+1] == 'd' {
				i++
				fmt.Fprintf(&b, "%d", d.Day())
			} else {
				b.WriteByte('%')
				b.WriteByte(spec[i])
			}
		case 'B':
			b.WriteString(d.MonthName(s))
		case 'A':
			b.WriteString(d.WeekdayName(s))
		case 'e':
			b.WriteString(eraMarker(s, d.EraIndex()))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(spec[i])
		}
	}
	return b.String()
}

// writePaddedYear zero-pads the magnitude to four digits, keeping the
// sign out front so negative years stay lexically parseable.
func writePaddedYear(b *strings.Builder, year int64) {
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	fmt.Fprintf(b, "%04d", year)
}

// eraMarker returns the display marker for an era, or "" when the
// schema has no eras.
func eraMarker(s *Schema, idx int) string {
	if len(s.eras) == 0 {
		return ""
	}
	if s.eras[idx].Symbol != "" {
		return s.eras[idx].Symbol
	}
	return s.eras[idx].Name
}

// FormatDuration renders a Duration in the compact canonical form the
// parser accepts (`1y32mo6d`), omitting zero components. The zero
// duration renders as "0d". A component keeps its own sign, so any
// valid Duration round-trips.
func FormatDuration(d Duration) string {
	if d.IsZero() {
		return "0d"
	}
	var b strings.Builder
	if d.Years != 0 {
		fmt.Fprintf(&b, "%dy", d.Years)
	}
	if d.Months != 0 {
		fmt.Fprintf(&b, "%dmo", d.Months)
	}
	if d.Days != 0 {
		fmt.Fprintf(&b, "%dd", d.Days)
	}
	return b.String()
}
