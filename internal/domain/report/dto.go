package report

// ========================================
// INSIGHTS REPORT
// ========================================

type InsightsReport struct {
	TotalEmployees  int             `json:"total_employees"`
	EmployeeGrowth  []GrowthBucket  `json:"employee_growth"`
	TodayAttendance TodaySnapshot   `json:"today_attendance"`
	MonthlyTrend    []DailyBucket   `json:"monthly_trend"`
	EmployeeStatus  ActivitySplit   `json:"employee_status"`
	WeeklyPattern   []WeekdayBucket `json:"weekly_pattern"`
}

// GrowthBucket counts roster registrations on one local date
type GrowthBucket struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Label string `json:"label"` // e.g. "Oct 8"
	Count int    `json:"count"`
}

// DailyBucket summarizes the events of one local date
type DailyBucket struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Rate    int    `json:"rate"`
}

// WeekdayBucket summarizes events by day of week across a window
type WeekdayBucket struct {
	Day     string `json:"day"`
	Present int    `json:"present"`
	Total   int    `json:"total"`
	Rate    int    `json:"rate"`
}

type TodaySnapshot struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	NotMarked int `json:"not_marked"`
	Total     int `json:"total"`
}

type ActivitySplit struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ========================================
// EMPLOYEE STATS REPORT
// ========================================

// EmployeeStat is one employee's lifetime attendance summary
type EmployeeStat struct {
	EmployeeID   string  `json:"employee_id"`
	Username     string  `json:"username"`
	Email        *string `json:"email"`
	TotalDays    int     `json:"total_days"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	PresenceRate int     `json:"presence_rate"`
}

type RankedEmployee struct {
	EmployeeStat
	DisplayText string `json:"display_text"`
}

type EmployeeStatsReport struct {
	HighestPresence      *RankedEmployee `json:"highest_presence"`
	AverageAttendance    int             `json:"average_attendance"`
	MostAbsents          *RankedEmployee `json:"most_absents"`
	TotalEmployees       int             `json:"total_employees"`
	TotalActiveEmployees int             `json:"total_active_employees"`
	EmployeeStats        []EmployeeStat  `json:"employee_stats"`
}
