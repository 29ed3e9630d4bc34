package sqlite

import (
	"context"
	"fmt"
	"sort"
)

// Migration is one schema step. Apply runs against the same connection the
// runner holds; Version is recorded in the version table after Apply
// succeeds.
type Migration struct {
	Version int64
	Apply   func(ctx context.Context, conn *Conn) error
}

// Migrate applies, in ascending version order, every migration whose
// version exceeds the stored schema version, recording each step as it
// lands. Re-running with the same list is a no-op, so the runner is safe
// to call on every open.
//
// Steps are not batched into one transaction: a failure leaves the version
// table at the last completed step and returns the failing step's error.
func (c *Conn) Migrate(ctx context.Context, migrations []Migration) error {
	current, err := c.LoadSchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ordered := make([]Migration, len(migrations))
	copy(ordered, migrations)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Version < ordered[j].Version })

	for _, m := range ordered {
		if m.Version <= current {
			continue
		}
		if err := m.Apply(ctx, c); err != nil {
			return fmt.Errorf("migrate to v%d: %w", m.Version, err)
		}
		if err := c.SetSchemaVersion(ctx, m.Version); err != nil {
			return fmt.Errorf("migrate to v%d: %w", m.Version, err)
		}
		current = m.Version
		c.logger.Info("schema migrated", "version", m.Version)
	}

	return nil
}
