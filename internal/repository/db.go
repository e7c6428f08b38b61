package repository

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by the repositories.
// pgxmock pools satisfy it as well, which is what the tests rely on.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pageBounds converts a 1-indexed page into LIMIT/OFFSET values
func pageBounds(page, size int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	// past this point the offset would overflow; the page is empty anyway
	if size > 0 && page > math.MaxInt/size+1 {
		page = math.MaxInt/size + 1
	}
	return size, (page - 1) * size
}
