package sqlite

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatValue renders a native value as a stable single-line tag, used by
// the golden and scenario tests to compare result cells textually.
func formatValue(v Value) string {
	switch val := v.(type) {
	case Null:
		return "Null"
	case Integer:
		return fmt.Sprintf("Integer(%d)", int64(val))
	case Double:
		return "Double(" + strconv.FormatFloat(float64(val), 'g', -1, 64) + ")"
	case Text:
		return fmt.Sprintf("Text(%q)", string(val))
	case Blob:
		return "Blob(" + hex.EncodeToString([]byte(val)) + ")"
	case Date:
		return "Date(" + time.Time(val).UTC().Format(time.RFC3339Nano) + ")"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// snapshotRows renders a result set one row per line, preceded by the
// column list. Deterministic for fixed inputs, suitable for golden files.
func snapshotRows(rows []Row) []byte {
	var b strings.Builder
	if len(rows) > 0 {
		b.WriteString("columns: " + strings.Join(rows[0].Columns(), ", ") + "\n")
	}
	for i, row := range rows {
		parts := make([]string, row.Len())
		for j := range parts {
			parts[j] = formatValue(row.Cell(j))
		}
		fmt.Fprintf(&b, "row %d: %s\n", i, strings.Join(parts, ", "))
	}
	return []byte(b.String())
}
