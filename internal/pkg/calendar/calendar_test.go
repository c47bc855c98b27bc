package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedZone(t *testing.T) *time.Location {
	t.Helper()
	// UTC+5, no DST, so expectations do not depend on the host zone.
	return time.FixedZone("PKT", 5*60*60)
}

func TestParseDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-02-29", "1999-12-31"}
	invalid := []string{"2024-13-40", "2023-02-29", "2024-1-05", "2024/01/05", "05-01-2024", "", "2024-01-01T00:00:00"}

	for _, s := range valid {
		d, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q) returned error %v", s, err)
			continue
		}
		if d.String() != s {
			t.Errorf("ParseDate(%q).String() = %q", s, d.String())
		}
	}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) = nil error, want error", s)
		}
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-10")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2025, Month: time.October}, m)
	assert.Equal(t, "2025-10", m.String())

	for _, s := range []string{"2025-13", "2025-1", "202510", "", "2025-10-01"} {
		_, err := ParseMonth(s)
		assert.Error(t, err, s)
	}
}

func TestDateOf_MidnightBoundaries(t *testing.T) {
	loc := fixedZone(t)

	cases := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{"local midnight belongs to the new day", time.Date(2025, 10, 8, 0, 0, 0, 0, loc), "2025-10-08"},
		{"one nanosecond before local midnight", time.Date(2025, 10, 7, 23, 59, 59, 999999999, loc), "2025-10-07"},
		{"UTC evening is next local day", time.Date(2025, 10, 7, 19, 0, 0, 0, time.UTC), "2025-10-08"},
		{"UTC just before local midnight", time.Date(2025, 10, 7, 18, 59, 59, 0, time.UTC), "2025-10-07"},
		{"year rollover", time.Date(2025, 12, 31, 19, 30, 0, 0, time.UTC), "2026-01-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DateOf(tc.instant, loc).String())
		})
	}
}

func TestDate_RangeAndAnchor(t *testing.T) {
	loc := fixedZone(t)
	d, err := ParseDate("2025-10-08")
	require.NoError(t, err)

	start, end := d.Start(loc), d.End(loc)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.Equal(t, d, DateOf(start, loc))
	assert.Equal(t, d.AddDays(1), DateOf(end, loc))

	anchor := d.Anchor(loc)
	assert.Equal(t, 12, anchor.Hour())
	assert.Equal(t, d, DateOf(anchor, loc))
	assert.True(t, !anchor.Before(start) && anchor.Before(end))
}

func TestDate_AddDaysAcrossMonths(t *testing.T) {
	d := Date{Year: 2024, Month: time.March, Day: 1}
	assert.Equal(t, "2024-02-29", d.AddDays(-1).String())
	assert.Equal(t, "2024-03-31", d.AddDays(30).String())
	assert.Equal(t, "2024-04-01", d.AddDays(31).String())
}

func TestDate_Compare(t *testing.T) {
	a := Date{Year: 2025, Month: time.January, Day: 31}
	b := Date{Year: 2025, Month: time.February, Day: 1}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDate_WeekdayAndLabel(t *testing.T) {
	d := Date{Year: 2025, Month: time.October, Day: 8}
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, "Oct 8", d.Label())
}

func TestMonth_Range(t *testing.T) {
	loc := fixedZone(t)
	m := Month{Year: 2024, Month: time.December}
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, loc), m.Start(loc))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), m.End(loc))

	assert.True(t, Month{Year: 2099, Month: time.January}.After(m))
	assert.False(t, m.After(m))
}

func TestCalendar_TodayUsesLocation(t *testing.T) {
	loc := fixedZone(t)
	cal := New(loc)
	cal.Now = func() time.Time { return time.Date(2025, 10, 7, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, "2025-10-08", cal.Today().String())
	assert.Equal(t, "01:00:00", cal.FormatTime(cal.Now()))
}
