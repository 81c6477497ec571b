package pgqb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

/*
Maximum amount of arguments that executors pass to the driver. Statements with
more arguments are rejected with `ErrTooManyArguments` before reaching the
database. The default is the limit of the Postgres wire protocol. Zero or
negative disables the check.
*/
var ParamLimit = 65535

/*
Subset of "database/sql" used by `DB`. Satisfied by `*sql.DB`, `*sql.Tx` and
`*sql.Conn`.
*/
type Conn interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
}

/*
Executes statements via "database/sql". Each call reifies the statement,
consuming its bucket, and binds the arguments 1:1 against "$1".."$N". If
`.Logger` is nil, nothing is logged.
*/
type DB struct {
	Conn   Conn
	Logger *slog.Logger
}

// Executes a statement that doesn't return rows, such as an `Update` without
// a "returning" clause.
func (self DB) Exec(ctx context.Context, stmt Stmt) (sql.Result, error) {
	if self.Conn == nil {
		return nil, ErrInvalidInput.while(`executing statement`).because(errNoConn)
	}

	text, args, err := reifyStmt(self.Logger, stmt)
	if err != nil {
		return nil, err
	}

	res, err := self.Conn.ExecContext(ctx, text, args...)
	if err != nil {
		return nil, fmt.Errorf(`failed to execute statement: %w`, err)
	}
	return res, nil
}

// Executes a statement that returns rows. The caller must close the rows.
func (self DB) Query(ctx context.Context, stmt Stmt) (*sql.Rows, error) {
	if self.Conn == nil {
		return nil, ErrInvalidInput.while(`querying`).because(errNoConn)
	}

	text, args, err := reifyStmt(self.Logger, stmt)
	if err != nil {
		return nil, err
	}

	rows, err := self.Conn.QueryContext(ctx, text, args...)
	if err != nil {
		return nil, fmt.Errorf(`failed to query: %w`, err)
	}
	return rows, nil
}

var errNoConn = errors.New(`database connection not provided`)

func reifyStmt(logger *slog.Logger, stmt Stmt) (text string, args []any, err error) {
	if stmt == nil {
		return ``, nil, ErrInvalidInput.while(`reifying statement`).because(
			errors.New(`statement is nil`),
		)
	}

	text, args, err = tryReify(stmt)
	if err != nil {
		return ``, nil, err
	}

	if ParamLimit > 0 && len(args) > ParamLimit {
		return ``, nil, ErrTooManyArguments.while(`reifying statement`).because(
			fmt.Errorf(`expected no more than %v args, got %v`, ParamLimit, len(args)),
		)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Debug(`executing statement`, slog.String(`sql`, text), slog.Int(`args`, len(args)))
	return text, args, nil
}

func tryReify(stmt Stmt) (text string, args []any, err error) {
	defer rec(&err)
	text, args = stmt.Reify()
	return
}
