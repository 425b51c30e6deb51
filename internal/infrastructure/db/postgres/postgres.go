package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a Postgres
// connection.
type Config struct {
	DSN string
	// Verbose enables SQL logging through bundebug; use in development only.
	Verbose bool
	Timeout time.Duration
}

// Connect opens a bun handle over Postgres and verifies connectivity with
// a ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*bun.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if cfg.Verbose {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

// InitSchema creates the users and posts tables when absent, foreign keys
// included. Posts declare ON DELETE CASCADE on user_id even though no
// delete-user endpoint exists yet.
func InitSchema(ctx context.Context, db *bun.DB) error {
	models := []any{(*userRecord)(nil), (*postRecord)(nil)}
	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
