package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papapumpkin/almanac/internal/calendar"
)

const manifestTOML = `
name = "Vessel"

[calendar]
weekdays = ["Moonday", "Towerday", "Windday", "Thunderday", "Starday"]

[[calendar.months]]
name = "Seedfall"
days = 10

[[calendar.months]]
name = "Highsun"
days = 10

[[calendar.months]]
name = "Embers"
days = 10

[[calendar.eras]]
name = "After Crowning"
symbol = "AC"
start_day = 0
direction = 1

[solar]
[[solar.bodies]]
name = "Sol"
kind = "primary"
period_days = 1

[[solar.bodies]]
name = "Pale Sister"
kind = "satellite"
period_days = 10

[state]
seconds = 86400
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()
		w, err := Load(writeManifest(t, manifestTOML))
		require.NoError(t, err)

		assert.Equal(t, "Vessel", w.Name)
		assert.Equal(t, 3, w.Calendar.MonthsInYear())
		assert.Len(t, w.Solar.Bodies(), 2)
		assert.Equal(t, int64(86400), w.Moment.Seconds)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		require.ErrorIs(t, err, ErrNoManifest)
	})

	t.Run("schema violations surface together", func(t *testing.T) {
		t.Parallel()
		bad := `
name = "Broken"
[calendar]
weekdays = []
`
		_, err := Load(writeManifest(t, bad))
		require.Error(t, err)
		assert.ErrorIs(t, err, calendar.ErrNoMonths)
		assert.ErrorIs(t, err, calendar.ErrNoWeekdays)
	})

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeManifest(t, "name = [unterminated"))
		require.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, manifestTOML)

	w, err := Load(path)
	require.NoError(t, err)

	w.Moment = w.Moment.AddSeconds(3600)
	require.NoError(t, w.Save())

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), again.Moment.Seconds)
	assert.Equal(t, "Vessel", again.Name, "schema sections survive a save")
	assert.Equal(t, 3, again.Calendar.MonthsInYear())
}

func TestMoment(t *testing.T) {
	t.Parallel()
	w, err := Load(writeManifest(t, manifestTOML))
	require.NoError(t, err)
	cal := w.Calendar

	t.Run("date and clock", func(t *testing.T) {
		t.Parallel()
		m := Moment{Seconds: 86400 + 3661}
		d := m.Date(cal)
		assert.Equal(t, int64(1), d.Year())
		assert.Equal(t, 1, d.Month())
		assert.Equal(t, int64(2), d.Day())
		assert.Equal(t, "01:01:01", m.Clock(cal))
	})

	t.Run("duration preserves time of day", func(t *testing.T) {
		t.Parallel()
		m := Moment{Seconds: 3600}
		moved := m.AddDuration(cal, calendar.DaysDuration(31))
		assert.Equal(t, "01:00:00", moved.Clock(cal))
		assert.Equal(t, 2, moved.Date(cal).Month())
	})

	t.Run("negative moments resolve to years before one", func(t *testing.T) {
		t.Parallel()
		m := Moment{Seconds: -1}
		d := m.Date(cal)
		assert.Equal(t, int64(0), d.Year())
		assert.Equal(t, "23:59:59", m.Clock(cal))
	})
}

func TestAdvance(t *testing.T) {
	t.Parallel()
	w, err := Load(writeManifest(t, manifestTOML))
	require.NoError(t, err)
	cal := w.Calendar

	start := Moment{Seconds: 0}

	cases := []struct {
		name string
		expr string
		want int64
	}{
		{"long rest", "long rest", 8 * 3600},
		{"short rest", "short rest", 4 * 3600},
		{"midday", "midday", 12 * 3600},
		{"clock hour", "8am", 8 * 3600},
		{"clock hour pm", "2pm", 14 * 3600},
		{"duration", "2d", 2 * 86400},
		{"compound duration", "1mo5d", 15 * 86400},
		{"prose ago", "1 day ago", -86400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := start.Advance(cal, tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Seconds)
		})
	}

	t.Run("midnight rolls a full day", func(t *testing.T) {
		t.Parallel()
		got, err := start.Advance(cal, "midnight")
		require.NoError(t, err)
		assert.Equal(t, int64(86400), got.Seconds)
	})

	t.Run("clock hour already passed waits for tomorrow", func(t *testing.T) {
		t.Parallel()
		evening := Moment{Seconds: 20 * 3600}
		got, err := evening.Advance(cal, "8am")
		require.NoError(t, err)
		assert.Equal(t, int64(86400+8*3600), got.Seconds)
	})

	t.Run("date jump preserves time of day", func(t *testing.T) {
		t.Parallel()
		m := Moment{Seconds: 3600}
		got, err := m.Advance(cal, "0002-01-01")
		require.NoError(t, err)
		assert.Equal(t, int64(30*86400+3600), got.Seconds)
	})

	t.Run("unparseable input reports offset", func(t *testing.T) {
		t.Parallel()
		_, err := start.Advance(cal, "sideways forever")
		var perr *calendar.ParseError
		require.ErrorAs(t, err, &perr)
	})
}

func TestJumpAndReturn(t *testing.T) {
	t.Parallel()

	t.Run("return restores the anchored moment", func(t *testing.T) {
		t.Parallel()
		w, err := Load(writeManifest(t, manifestTOML))
		require.NoError(t, err)

		canonical := w.Moment
		w.Jump()
		w.Moment, err = w.Moment.Advance(w.Calendar, "2d")
		require.NoError(t, err)
		require.True(t, w.Jumped())
		require.NotEqual(t, canonical, w.Moment)

		anchor, open := w.Anchor()
		require.True(t, open)
		assert.Equal(t, canonical, anchor)

		require.NoError(t, w.Return())
		assert.Equal(t, canonical, w.Moment)
		assert.False(t, w.Jumped())
	})

	t.Run("nested jumps keep the first anchor", func(t *testing.T) {
		t.Parallel()
		w, err := Load(writeManifest(t, manifestTOML))
		require.NoError(t, err)

		canonical := w.Moment
		w.Jump()
		w.Moment = w.Moment.AddSeconds(3600)
		w.Jump()
		w.Moment = w.Moment.AddSeconds(3600)

		require.NoError(t, w.Return())
		assert.Equal(t, canonical, w.Moment)
	})

	t.Run("return without a rift fails", func(t *testing.T) {
		t.Parallel()
		w, err := Load(writeManifest(t, manifestTOML))
		require.NoError(t, err)
		require.ErrorIs(t, w.Return(), ErrNotJumped)
		_, open := w.Anchor()
		assert.False(t, open)
	})

	t.Run("rift state survives save and reload", func(t *testing.T) {
		t.Parallel()
		path := writeManifest(t, manifestTOML)
		w, err := Load(path)
		require.NoError(t, err)

		canonical := w.Moment
		w.Jump()
		w.Moment = w.Moment.AddSeconds(7200)
		require.NoError(t, w.Save())

		again, err := Load(path)
		require.NoError(t, err)
		require.True(t, again.Jumped())
		assert.Equal(t, w.Moment, again.Moment)

		require.NoError(t, again.Return())
		assert.Equal(t, canonical, again.Moment)
		require.NoError(t, again.Save())

		final, err := Load(path)
		require.NoError(t, err)
		assert.False(t, final.Jumped())
		assert.Equal(t, canonical, final.Moment)
	})
}
