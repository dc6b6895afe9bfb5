package calendar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	s := mustSchema(t, eraDef())

	d := mustDate(t, s, 1101, 2, 8)
	cases := []struct {
		spec string
		want string
	}{
		{CanonicalDate, "1101-02-08"},
		{LongDate, "8 Highsun 1101 AC"},
		{"%B %d, %Y", "Highsun 08, 1101"},
		{"%A", d.WeekdayName(s)},
		{"100%%", "100%"},
		{"%q", "%q"}, // unknown directives pass through
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(s, d, tc.spec))
		})
	}

	t.Run("negative year keeps four-digit padding", func(t *testing.T) {
		t.Parallel()
		d := mustDate(t, s, -5, 1, 2)
		assert.Equal(t, "-0005-01-02", Format(s, d, CanonicalDate))
	})

	t.Run("backward era year", func(t *testing.T) {
		t.Parallel()
		d := mustDate(t, s, -1, 1, 1)
		assert.Equal(t, "1 Seedfall 2 BF", Format(s, d, LongDate))
	})
}

func TestCanonicalRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("dates across schemas", func(t *testing.T) {
		t.Parallel()
		for name, def := range map[string]Definition{
			"regular": threeMonthDef(),
			"leap":    leapDef(),
			"eras":    eraDef(),
		} {
			s := mustSchema(t, def)
			for abs := int64(-400); abs <= 400; abs += 7 {
				d := FromAbsoluteDay(s, abs)
				text := Format(s, d, CanonicalDate)
				back, err := ParseDate(s, text)
				require.NoError(t, err, "%s: %q", name, text)
				require.Equal(t, d, back, "%s: %q", name, text)
			}
		}
	})

	t.Run("long form round trips", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, eraDef())
		for _, abs := range []int64{0, 5, 29, 300, -1, -31} {
			d := FromAbsoluteDay(s, abs)
			text := Format(s, d, LongDate)
			back, err := ParseDate(s, text)
			require.NoError(t, err, "%q", text)
			require.Equal(t, d, back, "%q", text)
		}
	})

	t.Run("durations", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, threeMonthDef())
		for _, dur := range []Duration{
			{},
			{Days: 5},
			{Years: 1, Months: 32, Days: 6},
			{Years: -2, Days: 14},
			{Months: -3},
		} {
			text := FormatDuration(dur)
			back, err := ParseDuration(s, text)
			require.NoError(t, err, "%q", text)
			require.Equal(t, dur, back, "%q", text)
		}
	})
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dur  Duration
		want string
	}{
		{Duration{}, "0d"},
		{Duration{Days: 5}, "5d"},
		{Duration{Years: 1, Months: 2, Days: 3}, "1y2mo3d"},
		{Duration{Years: 1, Days: -5}, "1y-5d"},
		{Duration{Months: -3}, "-3mo"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.dur))
		})
	}
}

func ExampleFormat() {
	s, _ := Validate(Definition{
		Months:   []Month{{Name: "Thaw", Days: 30}, {Name: "Harvest", Days: 30}},
		Weekdays: []string{"Kingsday", "Queensday", "Faithday"},
	})
	d, _ := NewDate(s, 12, 2, 4)
	fmt.Println(Format(s, d, "%A, %-d %B %Y"))
	// Output: Kingsday, 4 Harvest 0012
}
