package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/attendance-admin/attendance-backend-go/internal/pkg/database"
	"github.com/attendance-admin/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, creates the schema and empties
// the tables. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, postgresql.EnsureSchema(ctx, db))
	truncateAll(t, db)
	t.Cleanup(func() { truncateAll(t, db) })

	return db
}

func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE attendance, users CASCADE")
	require.NoError(t, err)
}
