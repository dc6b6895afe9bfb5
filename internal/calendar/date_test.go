package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s *Schema, year int64, month int, day int64) Date {
	t.Helper()
	d, err := NewDate(s, year, month, day)
	require.NoError(t, err)
	return d
}

func TestNewDate(t *testing.T) {
	t.Parallel()
	s := mustSchema(t, leapDef())

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			name  string
			year  int64
			month int
			day   int64
			unit  string
		}{
			{"month zero", 1, 0, 1, "month"},
			{"month beyond cycle", 1, 4, 1, "month"},
			{"day zero", 1, 1, 0, "day"},
			{"day beyond month", 1, 1, 32, "day"},
			{"leap day in common year", 5, 2, 29, "day"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewDate(s, tc.year, tc.month, tc.day)
				require.ErrorIs(t, err, ErrOutOfRange)
				var derr *DateError
				require.ErrorAs(t, err, &derr)
				assert.Equal(t, tc.unit, derr.Unit)
			})
		}
	})

	t.Run("accepts the leap day in a leap year", func(t *testing.T) {
		t.Parallel()
		d := mustDate(t, s, 4, 2, 29)
		assert.Equal(t, int64(29), d.Day())
	})

	t.Run("never clamps", func(t *testing.T) {
		t.Parallel()
		_, err := NewDate(s, 1, 2, 29)
		require.Error(t, err, "construction must reject, not clamp")
	})
}

func TestAbsoluteDay(t *testing.T) {
	t.Parallel()

	t.Run("zero point", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, threeMonthDef())
		d := mustDate(t, s, 1, 1, 1)
		assert.Equal(t, int64(0), d.AbsoluteDay(s))
	})

	t.Run("bijective over a leap boundary window", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, leapDef())
		// Sweep across several year boundaries including leap year 4.
		seen := map[int64]Date{}
		for abs := int64(-200); abs <= 500; abs++ {
			d := FromAbsoluteDay(s, abs)
			require.Equal(t, abs, d.AbsoluteDay(s), "round trip at %d", abs)
			_, dup := seen[abs]
			require.False(t, dup)
			seen[abs] = d

			rebuilt, err := NewDate(s, d.Year(), d.Month(), d.Day())
			require.NoError(t, err)
			assert.Equal(t, d, rebuilt)
		}
	})

	t.Run("monotonic", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, leapDef())
		prev := FromAbsoluteDay(s, -50)
		for abs := int64(-49); abs < 200; abs++ {
			d := FromAbsoluteDay(s, abs)
			assert.Equal(t, -1, Compare(s, prev, d))
			prev = d
		}
	})

	t.Run("negative years", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, threeMonthDef())
		d := FromAbsoluteDay(s, -1)
		assert.Equal(t, int64(0), d.Year())
		assert.Equal(t, 3, d.Month())
		assert.Equal(t, int64(10), d.Day())
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()
	s := mustSchema(t, leapDef())

	a := mustDate(t, s, 2, 1, 5)
	b := mustDate(t, s, 2, 3, 5)
	assert.Equal(t, -1, Compare(s, a, b))
	assert.Equal(t, 1, Compare(s, b, a))
	assert.Equal(t, 0, Compare(s, a, a))

	// compare(d1,d2) == sign(absolute_day(d1) - absolute_day(d2))
	for _, pair := range [][2]Date{{a, b}, {b, a}, {a, a}} {
		diff := pair[0].AbsoluteDay(s) - pair[1].AbsoluteDay(s)
		want := 0
		if diff < 0 {
			want = -1
		} else if diff > 0 {
			want = 1
		}
		assert.Equal(t, want, Compare(s, pair[0], pair[1]))
	}
}

func TestWeekday(t *testing.T) {
	t.Parallel()
	s := mustSchema(t, threeMonthDef())

	d := mustDate(t, s, 1, 1, 1)
	assert.Equal(t, 0, d.Weekday())
	assert.Equal(t, "Moonday", d.WeekdayName(s))

	// The cycle is continuous across year boundaries: a 30-day year and
	// a 5-day week realign every year.
	next := FromAbsoluteDay(s, d.AbsoluteDay(s)+31)
	assert.Equal(t, 1, next.Weekday())

	// Backward too: the day before the zero point is the cycle's last day.
	prevDay := FromAbsoluteDay(s, -1)
	assert.Equal(t, 4, prevDay.Weekday())
}

func TestEras(t *testing.T) {
	t.Parallel()
	s := mustSchema(t, eraDef())

	t.Run("era membership and year counting", func(t *testing.T) {
		t.Parallel()
		crowned := mustDate(t, s, 5, 1, 1)
		assert.Equal(t, 1, crowned.EraIndex())
		assert.Equal(t, int64(5), crowned.EraYear(s))

		founding := mustDate(t, s, 0, 3, 10)
		assert.Equal(t, 0, founding.EraIndex())
		assert.Equal(t, int64(1), founding.EraYear(s), "the year before AC 1 is BF 1")

		earlier := mustDate(t, s, -1, 1, 1)
		assert.Equal(t, int64(2), earlier.EraYear(s))
	})

	t.Run("era-relative construction", func(t *testing.T) {
		t.Parallel()
		d, err := NewEraDate(s, "BF", 2, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(-1), d.Year())

		d, err = NewEraDate(s, "After Crowning", 5, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), d.Year())

		_, err = NewEraDate(s, "Unknown Age", 1, 1, 1)
		require.ErrorIs(t, err, ErrUnknownEra)
	})
}

func TestSchemaMismatchPanics(t *testing.T) {
	t.Parallel()
	wide := mustSchema(t, leapDef())
	narrow := mustSchema(t, threeMonthDef())

	// A day index valid in the 31-day month but impossible in the
	// ten-day month marks the date as foreign to the narrow schema.
	d := mustDate(t, wide, 1, 1, 31)
	assert.Panics(t, func() { d.AbsoluteDay(narrow) })
	assert.Panics(t, func() { Add(narrow, d, DaysDuration(1)) })
}
