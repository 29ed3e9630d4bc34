package sqlite

// Row is one result row: an ordered sequence of native values plus a
// column-name index built in the column order the driver returned.
// A Row is built fresh per result row and is immutable once returned;
// the caller owns it.
type Row struct {
	columns []string
	index   map[string]int
	cells   []Value
}

func newRow(columns []string, index map[string]int, cells []Value) Row {
	return Row{columns: columns, index: index, cells: cells}
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.cells)
}

// Columns returns the column names in result order.
func (r Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Cell returns the value at position i. Panics if i is out of range,
// matching slice indexing semantics.
func (r Row) Cell(i int) Value {
	return r.cells[i]
}

// Get returns the value for the named column and whether the column exists.
func (r Row) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.cells[i], true
}
