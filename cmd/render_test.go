package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/solar"
)

func testSchema(t *testing.T) *calendar.Schema {
	t.Helper()
	s, err := calendar.Validate(calendar.Definition{
		Months: []calendar.Month{
			{Name: "Seedfall", Days: 10},
			{Name: "Highsun", Days: 10},
			{Name: "Embers", Days: 10},
		},
		Weekdays: []string{"Moonday", "Towerday", "Kingsday", "Queensday", "Starday"},
	})
	require.NoError(t, err)
	return s
}

func TestRenderMonthGrid(t *testing.T) {
	cal := testSchema(t)
	got := renderMonth(cal, 2, 1, 3)

	assert.Contains(t, got, "Seedfall 2")
	// Year 2 opens on absolute day 30, weekday index 0: no lead-in blanks.
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4) // title, header, two rows of five

	for _, initial := range []string{"Mo", "To", "Ki", "Qu", "St"} {
		assert.Contains(t, lines[1], initial)
	}
	assert.Contains(t, lines[2], "1")
	assert.Contains(t, lines[3], "10")
}

func TestRenderMonthLeadIn(t *testing.T) {
	s, err := calendar.Validate(calendar.Definition{
		Months: []calendar.Month{
			{Name: "First", Days: 7},
			{Name: "Second", Days: 7},
		},
		Weekdays: []string{"One", "Two", "Three", "Four", "Five"},
	})
	require.NoError(t, err)

	// Second month of year 1 opens on absolute day 7, weekday index 2,
	// so its first row is indented two cells.
	got := renderMonth(s, 1, 2, 0)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[2], strings.Repeat("    ", 2)))
}

func TestResolveMonth(t *testing.T) {
	cal := testSchema(t)

	n, err := resolveMonth(cal, "highsun")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = resolveMonth(cal, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = resolveMonth(cal, "4")
	assert.Error(t, err)

	_, err = resolveMonth(cal, "Frostwane")
	assert.Error(t, err)
}

func TestRenderEvent(t *testing.T) {
	cal := testSchema(t)

	rise := solar.Event{Body: "Sol", Kind: solar.EventRise, Time: 2.0}
	assert.Contains(t, renderEvent(cal, rise), "Sol rises")
	assert.Contains(t, renderEvent(cal, rise), "0001-01-03")

	phase := solar.Event{Body: "Pale Sister", Kind: solar.EventPhase, Time: 5.5, Phase: solar.Full}
	got := renderEvent(cal, phase)
	assert.Contains(t, got, "Pale Sister")
	assert.Contains(t, got, "full")
	assert.Contains(t, got, "12:00:00")

	conj := solar.Event{Body: "Pale Sister", Other: "Red Wanderer", Kind: solar.EventConjunction, Time: 0}
	assert.Contains(t, renderEvent(cal, conj), "in conjunction")
}

func TestChroniclePath(t *testing.T) {
	got := chroniclePath(filepath.Join("campaigns", "vessel.toml"))
	assert.Equal(t, filepath.Join("campaigns", "vessel.chronicle.db"), got)
}
