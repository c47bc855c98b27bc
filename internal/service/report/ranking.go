package report

import (
	"fmt"
	"math"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/report"
)

// Ranking is the outcome of Rank. MostPresent and MostAbsent are nil when no
// roster member has any event.
type Ranking struct {
	Stats       []report.EmployeeStat
	MostPresent *report.RankedEmployee
	MostAbsent  *report.RankedEmployee
	AverageRate int
	ActiveCount int
}

// Rank computes lifetime statistics per roster member, in roster order.
// Employees without events are left out of the average and never ranked.
// Ties keep the first employee encountered.
func Rank(events []attendance.Event, roster []employee.Employee) Ranking {
	type tally struct{ present, absent int }
	tallies := make(map[string]*tally, len(roster))
	for _, e := range roster {
		tallies[e.ID] = &tally{}
	}
	for _, ev := range events {
		t, ok := tallies[ev.EmployeeID]
		if !ok {
			continue
		}
		if ev.Present {
			t.present++
		} else {
			t.absent++
		}
	}

	r := Ranking{Stats: make([]report.EmployeeStat, 0, len(roster))}

	var (
		best, worst *report.EmployeeStat
		rateSum     int
	)
	for _, e := range roster {
		t := tallies[e.ID]
		total := t.present + t.absent
		r.Stats = append(r.Stats, report.EmployeeStat{
			EmployeeID:   e.ID,
			Username:     e.DisplayName(),
			Email:        e.Email,
			TotalDays:    total,
			PresentDays:  t.present,
			AbsentDays:   t.absent,
			PresenceRate: percent(t.present, total),
		})
	}

	for i := range r.Stats {
		s := &r.Stats[i]
		if s.TotalDays == 0 {
			continue
		}
		r.ActiveCount++
		rateSum += s.PresenceRate

		if best == nil || s.PresentDays > best.PresentDays {
			best = s
		}
		if worst == nil || s.AbsentDays > worst.AbsentDays {
			worst = s
		}
	}

	if r.ActiveCount > 0 {
		r.AverageRate = int(math.Round(float64(rateSum) / float64(r.ActiveCount)))
	}
	if best != nil {
		r.MostPresent = &report.RankedEmployee{
			EmployeeStat: *best,
			DisplayText:  fmt.Sprintf("%d days present", best.PresentDays),
		}
	}
	if worst != nil {
		r.MostAbsent = &report.RankedEmployee{
			EmployeeStat: *worst,
			DisplayText:  fmt.Sprintf("%d days absent", worst.AbsentDays),
		}
	}

	return r
}

// TodaySnapshot counts today's events against the roster size. NotMarked
// never goes below zero even when events outnumber the roster.
func TodaySnapshot(todayEvents []attendance.Event, rosterSize int) report.TodaySnapshot {
	var snap report.TodaySnapshot
	for _, ev := range todayEvents {
		if ev.Present {
			snap.Present++
		} else {
			snap.Absent++
		}
	}
	snap.Total = rosterSize
	snap.NotMarked = max(0, rosterSize-snap.Present-snap.Absent)
	return snap
}
