package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestConn opens a fresh database in a temp dir and hands back one
// adapter connection. Cleanup closes both.
func openTestConn(t *testing.T, opts ...Option) *Conn {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"), opts...)
	require.NoError(t, err, "Open() failed")
	t.Cleanup(func() { db.Close() })

	conn, err := db.Conn(context.Background())
	require.NoError(t, err, "Conn() failed")
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestExecute_SelectWithoutParamsReturnsRows(t *testing.T) {
	// "SELECT 1" with zero parameters must still go through the query
	// path; the simple path would return no rows at all.
	conn := openTestConn(t)

	rows, err := conn.Execute(context.Background(), "SELECT 1", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Integer(1), rows[0].Cell(0))
}

func TestExecute_SelectPrefixIsCaseAndSpaceInsensitive(t *testing.T) {
	conn := openTestConn(t)

	rows, err := conn.Execute(context.Background(), "  \n\tselect 2", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Integer(2), rows[0].Cell(0))
}

func TestExecute_DDLUsesSimplePath(t *testing.T) {
	conn := openTestConn(t)
	ctx := context.Background()

	rows, err := conn.Execute(ctx, "CREATE TABLE t (x INT)", nil)
	require.NoError(t, err)
	assert.Nil(t, rows, "simple path returns no rows")

	rows, err = conn.Execute(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='t'", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Text("t"), rows[0].Cell(0))
}

func TestExecute_MultiStatementScript(t *testing.T) {
	// Multi-statement scripts are only valid on the simple path.
	conn := openTestConn(t)
	ctx := context.Background()

	script := `
		CREATE TABLE a (x INTEGER);
		CREATE TABLE b (y INTEGER);
		INSERT INTO a (x) VALUES (1);
		INSERT INTO a (x) VALUES (2);
	`
	_, err := conn.Execute(ctx, script, nil)
	require.NoError(t, err)

	rows, err := conn.Execute(ctx, "SELECT COUNT(*) FROM a", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Integer(2), rows[0].Cell(0))
}

func TestExecute_BindsEveryNativeKind(t *testing.T) {
	conn := openTestConn(t)
	ctx := context.Background()

	_, err := conn.Execute(ctx, `
		CREATE TABLE samples (
			id   INTEGER PRIMARY KEY,
			n    INTEGER,
			f    REAL,
			s    TEXT,
			b    BLOB,
			born TIMESTAMP,
			z    INTEGER
		)
	`, nil)
	require.NoError(t, err)

	born := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	_, err = conn.Execute(ctx,
		"INSERT INTO samples (n, f, s, b, born, z) VALUES (?, ?, ?, ?, ?, ?)",
		[]Value{Integer(42), Double(3.5), Text("ada"), Blob{0x01, 0xff}, Date(born), nil},
	)
	require.NoError(t, err)

	rows, err := conn.Execute(ctx, "SELECT n, f, s, b, born, z FROM samples", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, Integer(42), row.Cell(0))
	assert.Equal(t, Double(3.5), row.Cell(1))
	assert.Equal(t, Text("ada"), row.Cell(2))
	assert.Equal(t, Blob{0x01, 0xff}, row.Cell(3))

	gotBorn, ok := row.Cell(4).(Date)
	require.True(t, ok, "born cell is %T", row.Cell(4))
	assert.True(t, gotBorn.Time().Equal(born), "born = %v, want %v", gotBorn.Time(), born)

	assert.Equal(t, Null{}, row.Cell(5), "omitted parameter binds as NULL")
}

func TestExecute_ColumnIndexFollowsResultOrder(t *testing.T) {
	conn := openTestConn(t)

	rows, err := conn.Execute(context.Background(), "SELECT 1 AS one, 'x' AS two", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, []string{"one", "two"}, row.Columns())
	assert.Equal(t, 2, row.Len())

	v, ok := row.Get("one")
	require.True(t, ok)
	assert.Equal(t, Integer(1), v)

	v, ok = row.Get("two")
	require.True(t, ok)
	assert.Equal(t, Text("x"), v)

	_, ok = row.Get("three")
	assert.False(t, ok)
}

func TestExecute_DriverErrorPassesThrough(t *testing.T) {
	conn := openTestConn(t)
	ctx := context.Background()

	_, err := conn.Execute(ctx, "SELECT FROM nowhere", nil)
	require.Error(t, err)

	_, err = conn.Execute(ctx, "CREATE GIBBERISH", nil)
	require.Error(t, err)
}

func TestExecute_TextKeysRoundTrip(t *testing.T) {
	conn := openTestConn(t)
	ctx := context.Background()

	_, err := conn.Execute(ctx, "CREATE TABLE keyed (id TEXT PRIMARY KEY, seq INTEGER)", nil)
	require.NoError(t, err)

	keys := make([]string, 5)
	for i := range keys {
		keys[i] = uuid.NewString()
		_, err = conn.Execute(ctx,
			"INSERT INTO keyed (id, seq) VALUES (?, ?)",
			[]Value{Text(keys[i]), Integer(int64(i))},
		)
		require.NoError(t, err)
	}

	for i, key := range keys {
		rows, err := conn.Execute(ctx, "SELECT seq FROM keyed WHERE id = ?", []Value{Text(key)})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, Integer(int64(i)), rows[0].Cell(0))
	}
}

func TestLastInsertedRowID_FreshConnection(t *testing.T) {
	conn := openTestConn(t)

	_, err := conn.LastInsertedRowID(context.Background())
	require.ErrorIs(t, err, ErrNoRowsInserted)
}

func TestLastInsertedRowID_AfterInsert(t *testing.T) {
	conn := openTestConn(t)
	ctx := context.Background()

	_, err := conn.Execute(ctx, "CREATE TABLE t (id INTEGER PRIMARY KEY, x INTEGER)", nil)
	require.NoError(t, err)

	_, err = conn.Execute(ctx, "INSERT INTO t (x) VALUES (?)", []Value{Integer(10)})
	require.NoError(t, err)

	id, err := conn.LastInsertedRowID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = conn.Execute(ctx, "INSERT INTO t (x) VALUES (?)", []Value{Integer(11)})
	require.NoError(t, err)

	id, err = conn.LastInsertedRowID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestLastInsertedRowID_ZeroRowInsert(t *testing.T) {
	conn := openTestConn(t)
	ctx := context.Background()

	_, err := conn.Execute(ctx, "CREATE TABLE t (id INTEGER PRIMARY KEY, x INTEGER)", nil)
	require.NoError(t, err)

	_, err = conn.Execute(ctx, "INSERT INTO t (x) VALUES (?)", []Value{Integer(1)})
	require.NoError(t, err)

	// Inserts nothing: changes() drops to zero and the identifier is gone.
	_, err = conn.Execute(ctx, "INSERT INTO t (x) SELECT 2 WHERE 1 = 0", nil)
	require.NoError(t, err)

	_, err = conn.LastInsertedRowID(ctx)
	require.ErrorIs(t, err, ErrNoRowsInserted)
}
