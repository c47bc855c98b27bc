package calendar

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	TimeLayout  = "15:04:05"

	// anchorHour is the local hour at which reconciled events are stamped.
	// Noon keeps the instant far from both midnights of the day.
	anchorHour = 12
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates an instant to the calendar date it falls on in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	local := t.In(loc)
	return Date{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Start returns local midnight at the beginning of d.
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// End returns local midnight at the beginning of the following day.
// Day ranges are half open: [Start, End).
func (d Date) End(loc *time.Location) time.Time {
	return d.AddDays(1).Start(loc)
}

// Anchor returns the instant used to stamp reconciled events for d.
func (d Date) Anchor(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, anchorHour, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Compare returns -1, 0 or +1 for use with slices.SortFunc.
func (d Date) Compare(o Date) int {
	switch {
	case d.Before(o):
		return -1
	case o.Before(d):
		return 1
	default:
		return 0
	}
}

// Label renders d as a short chart label, e.g. "Oct 8".
func (d Date) Label() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("Jan 2")
}

// Month is a calendar month without a time zone.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a strict YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func MonthOf(d Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) FirstDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

func (m Month) Start(loc *time.Location) time.Time {
	return m.FirstDay().Start(loc)
}

// End returns local midnight on the first day of the next month.
func (m Month) End(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, loc)
}

func (m Month) After(o Month) bool {
	if m.Year != o.Year {
		return m.Year > o.Year
	}
	return m.Month > o.Month
}

// Calendar binds date arithmetic to a location and a clock.
type Calendar struct {
	Location *time.Location
	Now      func() time.Time
}

func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{Location: loc, Now: time.Now}
}

func (c *Calendar) Today() Date {
	return DateOf(c.Now(), c.Location)
}

func (c *Calendar) DateOf(t time.Time) Date {
	return DateOf(t, c.Location)
}

// FormatTime renders the local wall clock of t as HH:MM:SS.
func (c *Calendar) FormatTime(t time.Time) string {
	return t.In(c.Location).Format(TimeLayout)
}
