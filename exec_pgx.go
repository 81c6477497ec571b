package pgqb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/*
Subset of the pgx API used by `Pgx`. Satisfied by `*pgx.Conn`, `pgx.Tx` and
`*pgxpool.Pool`.
*/
type PgxConn interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
}

/*
Executes statements via pgx, bypassing "database/sql". Behaves like `DB`: each
call reifies the statement, consuming its bucket. If `.Logger` is nil, nothing
is logged.
*/
type Pgx struct {
	Conn   PgxConn
	Logger *slog.Logger
}

// Executes a statement that doesn't return rows.
func (self Pgx) Exec(ctx context.Context, stmt Stmt) (pgconn.CommandTag, error) {
	if self.Conn == nil {
		return pgconn.CommandTag{}, ErrInvalidInput.while(`executing statement`).because(errNoConn)
	}

	text, args, err := reifyStmt(self.Logger, stmt)
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	tag, err := self.Conn.Exec(ctx, text, args...)
	if err != nil {
		return tag, fmt.Errorf(`failed to execute statement: %w`, err)
	}
	return tag, nil
}

// Executes a statement that returns rows. The caller must close the rows.
func (self Pgx) Query(ctx context.Context, stmt Stmt) (pgx.Rows, error) {
	if self.Conn == nil {
		return nil, ErrInvalidInput.while(`querying`).because(errNoConn)
	}

	text, args, err := reifyStmt(self.Logger, stmt)
	if err != nil {
		return nil, err
	}

	rows, err := self.Conn.Query(ctx, text, args...)
	if err != nil {
		return nil, fmt.Errorf(`failed to query: %w`, err)
	}
	return rows, nil
}

/*
Shortcut for querying and collecting rows via `pgx.CollectRows`, for example:

	ids, err := pgqb.Collect(ctx, conn, qb, pgx.RowTo[int64])
*/
func Collect[A any](ctx context.Context, conn Pgx, stmt Stmt, fun pgx.RowToFunc[A]) ([]A, error) {
	rows, err := conn.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, fun)
}
