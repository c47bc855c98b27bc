package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/attendance-admin/attendance-backend-go/internal/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the users and attendance tables when missing. Every
// statement is idempotent so it runs on each start.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
