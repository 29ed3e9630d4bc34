package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/sworm/sqlite/internal/wire"
)

// Conn adapts one dedicated driver connection to the sworm connection
// contract. It holds the connection by composition rather than extending
// the driver's type, converts parameters down to wire values and result
// cells back up to native values, and maintains the schema-version table.
//
// A Conn has a single logical owner; concurrent use from multiple callers
// is undefined. No locking, caching, or retry happens here.
type Conn struct {
	conn   *sql.Conn
	logger *slog.Logger
}

// Conn acquires a dedicated connection from the pool and wraps it.
// The caller must Close the returned Conn to release it.
func (d *DB) Conn(ctx context.Context) (*Conn, error) {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &Conn{conn: conn, logger: d.logger}, nil
}

// Close releases the underlying connection back to the pool.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Execute runs one statement and returns its normalized result rows.
// A nil element in params is bound as NULL.
//
// Routing: with no parameters and a statement that does not begin with
// SELECT, the simple exec path is used - it is the only path that accepts
// DDL and multi-statement scripts. Any bound parameter, or any SELECT,
// goes through the parameterized query path so structured rows come back.
//
// Driver errors pass through unmodified apart from operation context;
// a compound cell in a result fails with ErrCompoundType.
func (c *Conn) Execute(ctx context.Context, statement string, params []Value) ([]Row, error) {
	args, err := bindArgs(params)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	if len(args) == 0 && !isSelect(statement) {
		c.logger.Debug("executing statement", "path", "simple")
		if _, err := c.conn.ExecContext(ctx, statement); err != nil {
			return nil, fmt.Errorf("execute: %w", err)
		}
		return nil, nil
	}

	c.logger.Debug("executing statement", "path", "query", "params", len(args))
	rows, err := c.conn.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	defer rows.Close()

	out, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	return out, nil
}

// LastInsertedRowID reads the driver's last-statement metadata on this
// connection. Fails with ErrNoRowsInserted when no auto-generated
// identifier is available - the last statement was not an insert, or it
// inserted zero rows.
func (c *Conn) LastInsertedRowID(ctx context.Context) (int64, error) {
	var rowID, changes int64
	err := c.conn.QueryRowContext(ctx, "SELECT last_insert_rowid(), changes()").Scan(&rowID, &changes)
	if err != nil {
		return 0, fmt.Errorf("last inserted row id: %w", err)
	}
	if rowID == 0 || changes == 0 {
		return 0, ErrNoRowsInserted
	}
	return rowID, nil
}

// bindArgs lowers native parameters to driver bind arguments. An absent
// parameter becomes the wire null marker; fromNative is total, so this
// only fails if the wire layer ever refuses a value it produced.
func bindArgs(params []Value) ([]any, error) {
	if len(params) == 0 {
		return nil, nil
	}
	args := make([]any, len(params))
	for i, p := range params {
		dv, err := wire.ToDriver(fromNative(p))
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		args[i] = dv
	}
	return args, nil
}

// collectRows drains a result set, lifting each cell through the wire
// union into the native union. The column index map follows the column
// order the driver returned.
func collectRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}

	var out []Row
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		cells := make([]Value, len(columns))
		for i, cell := range raw {
			wv, err := wire.FromDriver(cell)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", columns[i], err)
			}
			nv, err := toNative(wv)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", columns[i], err)
			}
			cells[i] = nv
		}
		out = append(out, newRow(columns, index, cells))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// isSelect reports whether the statement, after trimming leading
// whitespace, begins with SELECT in any case.
func isSelect(statement string) bool {
	trimmed := strings.TrimLeftFunc(statement, unicode.IsSpace)
	const prefix = "select"
	return len(trimmed) >= len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix)
}
