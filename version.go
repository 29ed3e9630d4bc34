package sqlite

import (
	"context"
	"fmt"
)

// Schema-version bookkeeping. One table, one row: the ORM's migration
// machinery reads and writes an integer version through the two methods
// below. Table creation happens before every access and relies on the
// driver's CREATE TABLE IF NOT EXISTS being safe under concurrent
// execution; the read-then-create sequence is not transactional.

const (
	versionTable = "_sworm_version"

	createVersionTable = `CREATE TABLE IF NOT EXISTS ` + versionTable + ` (
	id INTEGER PRIMARY KEY NOT NULL,
	version INTEGER NOT NULL
)`

	selectVersion = `SELECT version FROM ` + versionTable + ` WHERE id = 0`

	upsertVersion = `REPLACE INTO ` + versionTable + ` (id, version) VALUES (0, ?)`
)

// LoadSchemaVersion returns the stored schema version, or 0 if it was
// never set. Creates the version table if absent.
func (c *Conn) LoadSchemaVersion(ctx context.Context) (int64, error) {
	if err := c.ensureVersionTable(ctx); err != nil {
		return 0, err
	}

	rows, err := c.Execute(ctx, selectVersion, nil)
	if err != nil {
		return 0, fmt.Errorf("load schema version: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	version, ok := rows[0].Cell(0).(Integer)
	if !ok {
		return 0, fmt.Errorf("load schema version: unexpected cell type %T", rows[0].Cell(0))
	}
	return int64(version), nil
}

// SetSchemaVersion writes the schema version via replace-on-conflict,
// keeping the table at exactly one row. Creates the version table if
// absent.
func (c *Conn) SetSchemaVersion(ctx context.Context, version int64) error {
	if err := c.ensureVersionTable(ctx); err != nil {
		return err
	}

	if _, err := c.Execute(ctx, upsertVersion, []Value{Integer(version)}); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}

func (c *Conn) ensureVersionTable(ctx context.Context) error {
	if _, err := c.Execute(ctx, createVersionTable, nil); err != nil {
		return fmt.Errorf("ensure version table: %w", err)
	}
	return nil
}
