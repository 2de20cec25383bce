package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/wordsim/migrations"
)

// Migrate applies every pending goose migration and returns the number of
// migrations that ran.
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	// goose.NewProvider handles $$-delimited bodies, unlike the legacy goose.Up.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}

// MigratePool runs Migrate over a database/sql handle borrowed from pool.
// The handle holds no idle connections of its own; pool owns them.
func MigratePool(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	return Migrate(ctx, stdlib.OpenDBFromPool(pool))
}
