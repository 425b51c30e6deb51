package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/duhduh/blog-api/internal/core/domain"
)

// newTestDB returns a bun handle over an in-memory SQLite database with
// the full schema applied. A single connection keeps the database alive
// for the duration of the test.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func seedUser(t *testing.T, repo *UserRepository, email string) *domain.User {
	t.Helper()

	user, err := repo.Create(context.Background(), &domain.User{
		FirstName:    "Benedict",
		LastName:     "Debrah",
		Email:        email,
		PasswordHash: "$2a$10$notarealhashbutgoodenough",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
