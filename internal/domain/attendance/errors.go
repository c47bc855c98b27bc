package attendance

import "errors"

// Attendance domain errors
var (
	// Reconciliation errors. Each is fatal for the save; the caller retries.
	ErrClearDayFailed   = errors.New("failed to clear existing attendance for the day")
	ErrLoadRosterFailed = errors.New("failed to load employees")
	ErrSaveDayFailed    = errors.New("failed to save attendance; the day was left unchanged, submit it again")

	// Read errors
	ErrFetchFailed = errors.New("failed to fetch attendance")
)
