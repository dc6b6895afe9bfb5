package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/solar"
	"github.com/papapumpkin/almanac/internal/world"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold — the current day, highlights
	colorSuccess = lipgloss.Color("#00E676") // Green — validation passed
	colorDanger  = lipgloss.Color("#FF5252") // Red — errors
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray — de-emphasized
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleAccent = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleOK = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	styleDanger = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)
)

func renderErr(err error) string {
	return styleDanger.Render("error: ") + err.Error()
}

// renderMonth draws a weekday-headed grid of one month, highlighting
// the given day when it falls inside the month (pass 0 for none).
func renderMonth(cal *calendar.Schema, year int64, month int, today int64) string {
	var b strings.Builder

	name := cal.Months()[month-1].Name
	length := cal.MonthLength(year, month)
	b.WriteString(styleTitle.Render(fmt.Sprintf("%s %d", name, year)))
	b.WriteByte('\n')

	// Weekday initials, padded to the day-number column width.
	var heads []string
	for _, wd := range cal.Weekdays() {
		heads = append(heads, fmt.Sprintf("%3s", initial(wd)))
	}
	b.WriteString(styleMuted.Render(strings.Join(heads, " ")))
	b.WriteByte('\n')

	first, err := calendar.NewDate(cal, year, month, 1)
	if err != nil {
		return renderErr(err)
	}
	week := cal.DaysInWeek()

	// Lead-in blanks so day 1 lands under its weekday.
	col := int64(first.Weekday())
	b.WriteString(strings.Repeat("    ", int(col)))
	for day := int64(1); day <= length; day++ {
		cell := fmt.Sprintf("%3d", day)
		if day == today {
			cell = styleAccent.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == week && day < length {
			b.WriteByte('\n')
			col = 0
		} else if day < length {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func initial(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

// renderEvent formats one celestial event with its calendar date and
// time of day.
func renderEvent(cal *calendar.Schema, ev solar.Event) string {
	day := int64(ev.Time)
	if float64(day) > ev.Time {
		day--
	}
	date := calendar.FromAbsoluteDay(cal, day)
	clock := world.Moment{Seconds: int64(ev.Time * float64(cal.Day().SecondsPerDay()))}.Clock(cal)
	stamp := fmt.Sprintf("%s %s", calendar.Format(cal, date, calendar.CanonicalDate), clock)

	switch ev.Kind {
	case solar.EventRise:
		return fmt.Sprintf("%s  %s", stamp, styleAccent.Render(ev.Body+" rises"))
	case solar.EventSet:
		return fmt.Sprintf("%s  %s", stamp, styleMuted.Render(ev.Body+" sets"))
	case solar.EventPhase:
		return fmt.Sprintf("%s  %s %s %s", stamp, ev.Body, ev.Phase.Glyph(), ev.Phase)
	case solar.EventConjunction:
		return fmt.Sprintf("%s  %s", stamp, styleTitle.Render(ev.Body+" and "+ev.Other+" in conjunction"))
	}
	return fmt.Sprintf("%s  %s %s", stamp, ev.Body, ev.Kind)
}

// renderViolations lists every violation of a failed schema check.
func renderViolations(header string, errs []error) string {
	var b strings.Builder
	b.WriteString(styleDanger.Render(fmt.Sprintf("✗ %s — %d error(s):", header, len(errs))))
	for _, e := range errs {
		b.WriteString("\n  " + styleDanger.Render("•") + " " + e.Error())
	}
	return b.String()
}
