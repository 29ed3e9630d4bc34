package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"

	sqlite3 "github.com/mattn/go-sqlite3"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Dialect is the SQL dialect tag this binding reports to the ORM. The ORM
// uses it to pick dialect-specific statement generation (quoting rules,
// auto-increment syntax). Static capability, not runtime state.
const Dialect = "sqlite"

// UnicodeCollation is the name under which WithUnicodeCollation registers
// its collating sequence, for use in COLLATE clauses.
const UnicodeCollation = "UNICODE"

// DB is an open SQLite database. It owns the underlying pool and hands out
// single-connection adapters via Conn.
type DB struct {
	db     *sql.DB
	logger *slog.Logger
}

// Option configures Open.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	pragmas   []string
	collation bool
}

// WithLogger routes the binding's debug logging to the given logger.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithPragma applies an additional PRAGMA after the defaults, so it can
// also override them.
func WithPragma(name, value string) Option {
	return func(o *options) {
		o.pragmas = append(o.pragmas, fmt.Sprintf("PRAGMA %s = %s", name, value))
	}
}

// WithUnicodeCollation registers a locale-correct collating sequence named
// UNICODE on every driver connection. SQLite's built-in collations compare
// by byte value; this one orders via the Unicode collation algorithm.
func WithUnicodeCollation() Option {
	return func(o *options) { o.collation = true }
}

// Open creates or opens a SQLite database at the given path (":memory:" is
// accepted). Applies required pragmas and limits the pool to a single
// connection, since SQLite supports one writer at a time.
//
// This function is idempotent - safe to call multiple times on the same path.
func Open(path string, opts ...Option) (*DB, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	driverName := "sqlite3"
	if o.collation {
		driverName = collationDriver()
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Single writer to avoid SQLITE_BUSY errors, one connection kept ready.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, o.pragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return &DB{db: db, logger: o.logger}, nil
}

// Close closes the database and all of its connections.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// applyPragmas sets required SQLite configuration, then any extras from
// WithPragma.
func applyPragmas(db *sql.DB, extra []string) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	pragmas = append(pragmas, extra...)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (d *DB) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := d.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

var (
	collationOnce sync.Once

	// collate.Collator is not safe for concurrent use.
	collatorMu sync.Mutex
	collator   = collate.New(language.Und)
)

// collationDriver registers (once) and returns a driver variant whose
// connect hook installs the UNICODE collation.
func collationDriver() string {
	const name = "sqlite3_unicode"
	collationOnce.Do(func() {
		sql.Register(name, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterCollation(UnicodeCollation, compareUnicode)
			},
		})
	})
	return name
}

func compareUnicode(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
