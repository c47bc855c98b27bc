package report

import (
	"math"
	"slices"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/report"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/calendar"
)

const (
	growthWindowDays = 7
	trendWindowDays  = 30
	trendMaxDates    = 14
)

// percent returns num/den as a whole percentage rounded half up; a zero
// denominator yields 0.
func percent(num, den int) int {
	if den <= 0 {
		return 0
	}
	return int(math.Round(float64(num*100) / float64(den)))
}

// trendWindow is the 30 days before today plus today itself.
func trendWindow(cal *calendar.Calendar) attendance.TimeRange {
	today := cal.Today()
	return attendance.TimeRange{
		From: today.AddDays(-trendWindowDays).Start(cal.Location),
		To:   today.End(cal.Location),
	}
}

// GrowthSeries counts roster registrations per local day over the seven days
// ending today. All seven buckets are present, oldest first.
func GrowthSeries(roster []employee.Employee, cal *calendar.Calendar) []report.GrowthBucket {
	today := cal.Today()
	first := today.AddDays(-(growthWindowDays - 1))

	buckets := make([]report.GrowthBucket, growthWindowDays)
	index := make(map[calendar.Date]int, growthWindowDays)
	for i := range buckets {
		d := first.AddDays(i)
		buckets[i] = report.GrowthBucket{Date: d.String(), Label: d.Label()}
		index[d] = i
	}

	for _, e := range roster {
		if i, ok := index[cal.DateOf(e.CreatedAt)]; ok {
			buckets[i].Count++
		}
	}

	return buckets
}

// DailyTrend groups events by local date and keeps the most recent limit
// dates that have at least one event, oldest first.
func DailyTrend(events []attendance.Event, cal *calendar.Calendar, limit int) []report.DailyBucket {
	var (
		order []calendar.Date
		byDay = make(map[calendar.Date]*report.DailyBucket)
	)

	for _, e := range events {
		d := cal.DateOf(e.CreatedAt)
		b, ok := byDay[d]
		if !ok {
			b = &report.DailyBucket{Date: d.String(), Label: d.Label()}
			byDay[d] = b
			order = append(order, d)
		}
		if e.Present {
			b.Present++
		} else {
			b.Absent++
		}
	}

	slices.SortFunc(order, calendar.Date.Compare)
	if limit > 0 && len(order) > limit {
		order = order[len(order)-limit:]
	}

	trend := make([]report.DailyBucket, 0, len(order))
	for _, d := range order {
		b := byDay[d]
		b.Rate = percent(b.Present, b.Present+b.Absent)
		trend = append(trend, *b)
	}
	return trend
}

// WeekdayPattern accumulates events per local day of week, Sunday first,
// dropping weekdays without events.
func WeekdayPattern(events []attendance.Event, cal *calendar.Calendar) []report.WeekdayBucket {
	var days [7]report.WeekdayBucket
	for i := range days {
		days[i].Day = time.Weekday(i).String()
	}

	for _, e := range events {
		wd := cal.DateOf(e.CreatedAt).Weekday()
		days[wd].Total++
		if e.Present {
			days[wd].Present++
		}
	}

	pattern := make([]report.WeekdayBucket, 0, len(days))
	for _, d := range days {
		if d.Total == 0 {
			continue
		}
		d.Rate = percent(d.Present, d.Total)
		pattern = append(pattern, d)
	}
	return pattern
}

// ActivitySplit counts roster members with at least one event in events as
// active; the rest of the roster is inactive.
func ActivitySplit(events []attendance.Event, roster []employee.Employee) report.ActivitySplit {
	members := make(map[string]bool, len(roster))
	for _, e := range roster {
		members[e.ID] = false
	}

	active := 0
	for _, ev := range events {
		if seen, ok := members[ev.EmployeeID]; ok && !seen {
			members[ev.EmployeeID] = true
			active++
		}
	}

	return report.ActivitySplit{
		Active:   active,
		Inactive: max(0, len(roster)-active),
	}
}
