package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/user"
	"github.com/attendance-admin/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEmployeeRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	alice, err := repo.Create(ctx, employee.Employee{Username: "alice", Email: strPtr("alice@example.com")}, "hash")
	require.NoError(t, err)
	bob, err := repo.Create(ctx, employee.Employee{Username: "bob"}, "hash")
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{Username: "alice"}, "hash")
	assert.ErrorIs(t, err, employee.ErrUsernameExists)
	_, err = repo.Create(ctx, employee.Employee{Username: "carol", Email: strPtr("alice@example.com")}, "hash")
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	roster, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, alice.ID, roster[0].ID)
	assert.Equal(t, bob.ID, roster[1].ID)

	updated, err := repo.Update(ctx, employee.UpdateEmployeeRequest{ID: bob.ID, Phone: strPtr("0300-1234567"), Email: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "0300-1234567", *updated.Phone)
	assert.Nil(t, updated.Email)

	require.NoError(t, repo.UpdateAvatar(ctx, bob.ID, "avatars/b.jpg"))
	got, err := repo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "avatars/b.jpg", *got.AvatarPath)

	require.NoError(t, repo.Delete(ctx, bob.ID))
	_, err = repo.GetByID(ctx, bob.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, bob.ID), employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_RosterExcludesAdmins(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := postgresql.NewUserRepository(db)
	_, err := users.Create(ctx, user.User{Username: "root", Email: strPtr("root@example.com"), PasswordHash: strPtr("hash"), Role: user.RoleAdmin})
	require.NoError(t, err)

	roster, err := postgresql.NewEmployeeRepository(db).ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, roster)

	exists, err := users.ExistsByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, exists)

	byEmail, err := users.GetByEmail(ctx, "ROOT@example.com")
	require.NoError(t, err)
	assert.Equal(t, "root", byEmail.Username)

	_, err = users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAttendanceRepository_ReplaceDayInTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	emp, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{Username: "alice"}, "hash")
	require.NoError(t, err)

	repo := postgresql.NewAttendanceRepository(db)
	tx := postgresql.NewTransactor(db)

	day := attendance.TimeRange{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	noon := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertEvents(ctx, []attendance.Event{{EmployeeID: emp.ID, Present: false, CreatedAt: noon}}))

	// a failing unit of work leaves the old rows untouched
	boom := errors.New("boom")
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.DeleteEvents(ctx, day); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	events, err := repo.QueryEvents(ctx, attendance.EventFilter{Range: &day})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Present)

	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.DeleteEvents(ctx, day); err != nil {
			return err
		}
		return repo.InsertEvents(ctx, []attendance.Event{{EmployeeID: emp.ID, Present: true, CreatedAt: noon}})
	})
	require.NoError(t, err)

	events, err = repo.QueryEvents(ctx, attendance.EventFilter{EmployeeID: &emp.ID, NewestFirst: true})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Present)
	assert.True(t, events[0].CreatedAt.Equal(noon))
}
