package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// QueryEvents implements attendance.AttendanceRepository.
func (a *attendanceRepository) QueryEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Range != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d AND created_at < $%d", argIdx, argIdx+1))
		args = append(args, filter.Range.From, filter.Range.To)
		argIdx += 2
	}

	query := `SELECT id, user_id, present, note, lat, lng, created_at FROM attendance`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	if filter.NewestFirst {
		query += " ORDER BY created_at DESC, id"
	} else {
		query += " ORDER BY created_at ASC, id"
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	events := make([]attendance.Event, 0)
	for rows.Next() {
		var e attendance.Event
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Present, &e.Note, &e.Latitude, &e.Longitude, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return events, nil
}

// DeleteEvents implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteEvents(ctx context.Context, r attendance.TimeRange) (int64, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE created_at >= $1 AND created_at < $2`, r.From, r.To)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance: %w", err)
	}

	return tag.RowsAffected(), nil
}

// InsertEvents implements attendance.AttendanceRepository.
func (a *attendanceRepository) InsertEvents(ctx context.Context, events []attendance.Event) error {
	if len(events) == 0 {
		return nil
	}

	q := GetQuerier(ctx, a.db)

	n, err := q.CopyFrom(ctx,
		pgx.Identifier{"attendance"},
		[]string{"user_id", "present", "note", "lat", "lng", "created_at"},
		pgx.CopyFromSlice(len(events), func(i int) ([]interface{}, error) {
			e := events[i]
			return []interface{}{e.EmployeeID, e.Present, e.Note, e.Latitude, e.Longitude, e.CreatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert attendance: %w", err)
	}
	if n != int64(len(events)) {
		return fmt.Errorf("failed to insert attendance: copied %d of %d rows", n, len(events))
	}

	return nil
}
