package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ResultSet holds materialized query rows. Columns preserves the order the
// database returned them in; each row maps column name to value.
type ResultSet struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func (rs ResultSet) Empty() bool { return len(rs.Rows) == 0 }

// ConnectionError means the database could not be reached or the
// credentials were rejected. No statement was executed.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return "database connection failed: " + e.Cause.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// ExecutionError means the statement was rejected or failed at the
// database after a connection was established.
type ExecutionError struct {
	Cause error
}

func (e *ExecutionError) Error() string { return e.Cause.Error() }

func (e *ExecutionError) Unwrap() error { return e.Cause }

// Opener yields a database handle scoped to a single call. The caller owns
// the handle and must close it.
type Opener func() (*sql.DB, error)

// MySQLOpener builds an Opener from connection settings. The returned
// opener verifies connectivity with a ping so that acquisition failures
// surface before any statement runs.
func MySQLOpener(host string, port int, user, password, dbname string) Opener {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", host, port)
	cfg.User = user
	cfg.Passwd = password
	cfg.DBName = dbname
	cfg.ParseTime = true
	dsn := cfg.FormatDSN()

	return func() (*sql.DB, error) {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}
}

// Executor runs one statement per call against a freshly opened
// connection. The connection is released on every path.
type Executor struct {
	open Opener
}

func NewExecutor(open Opener) *Executor {
	return &Executor{open: open}
}

// Execute runs the statement once and materializes all rows. It performs no
// rewriting or validation; callers are expected to have guarded the query.
func (e *Executor) Execute(ctx context.Context, query string) (ResultSet, error) {
	db, err := e.open()
	if err != nil {
		return ResultSet{}, &ConnectionError{Cause: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return ResultSet{}, &ExecutionError{Cause: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return ResultSet{}, &ExecutionError{Cause: err}
	}

	rs := ResultSet{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return ResultSet{}, &ExecutionError{Cause: err}
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = normalize(values[i])
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return ResultSet{}, &ExecutionError{Cause: err}
	}
	return rs, nil
}

// normalize converts driver byte slices to strings so values render as text
// rather than base64 when marshalled.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
