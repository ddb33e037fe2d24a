package postgres

import (
	"context"
	"database/sql"
)

// DB is the write-only slice of database/sql the event repository needs.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NewSQLDB adapts a pooled *sql.DB; *sql.Tx satisfies DB directly.
func NewSQLDB(db *sql.DB) DB {
	return db
}
