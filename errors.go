package sqlite

import "errors"

// ErrCompoundType is returned when a wire value of array or object kind
// reaches the native conversion. The ORM value model has no representation
// for nested structures, so the conversion fails rather than flattening.
var ErrCompoundType = errors.New("compound wire value has no native representation")

// ErrNoRowsInserted is returned by LastInsertedRowID when the driver has no
// auto-generated identifier for the last statement on the connection.
var ErrNoRowsInserted = errors.New("no rows inserted")
