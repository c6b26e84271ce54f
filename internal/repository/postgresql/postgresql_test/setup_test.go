package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/hrsvr/hr-backend-go/internal/pkg/database"
	"github.com/hrsvr/hr-backend-go/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection shared by the repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and creates the schema.
// Tests are skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.TruncateAllTables(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to truncate test database: %v", err)
	}
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes all rows and restarts the application sequence.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"applications",
		"attendance",
		"employees",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
