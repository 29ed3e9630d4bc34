package sqlite

import (
	"fmt"
	"time"

	"github.com/sworm/sqlite/internal/wire"
)

// toNative converts a wire value into the native union.
//
// Every integer subtype widens to a 64-bit signed Integer. Unsigned 64-bit
// values above the signed range wrap under two's complement; SQLite stores
// the same wrapped representation, so the widening is deliberately
// unguarded. Bool collapses to Integer 1/0. The two compound kinds have no
// native case and fail with ErrCompoundType regardless of their contents.
func toNative(v wire.Value) (Value, error) {
	switch val := v.(type) {
	case wire.Null:
		return Null{}, nil
	case wire.Int8:
		return Integer(val), nil
	case wire.Int16:
		return Integer(val), nil
	case wire.Int32:
		return Integer(val), nil
	case wire.Int64:
		return Integer(val), nil
	case wire.Uint8:
		return Integer(val), nil
	case wire.Uint16:
		return Integer(val), nil
	case wire.Uint32:
		return Integer(val), nil
	case wire.Uint64:
		return Integer(int64(val)), nil
	case wire.Int:
		return Integer(val), nil
	case wire.Float32:
		return Double(val), nil
	case wire.Float64:
		return Double(val), nil
	case wire.Bool:
		if val {
			return Integer(1), nil
		}
		return Integer(0), nil
	case wire.Text:
		return Text(val), nil
	case wire.Blob:
		return Blob(val), nil
	case wire.Date:
		return Date(time.Time(val)), nil
	case wire.Array, wire.Object:
		return nil, ErrCompoundType
	default:
		return nil, fmt.Errorf("unknown wire value type %T", v)
	}
}

// fromNative converts a native value into its wire form. Total: the native
// case set is a strict subset of what the wire can carry. A nil Value is
// treated as an omitted parameter and becomes the wire null marker.
func fromNative(v Value) wire.Value {
	switch val := v.(type) {
	case nil, Null:
		return wire.Null{}
	case Integer:
		return wire.Int64(val)
	case Double:
		return wire.Float64(val)
	case Text:
		return wire.Text(val)
	case Blob:
		return wire.Blob(val)
	case Date:
		return wire.Date(time.Time(val))
	default:
		// Unreachable for values built from this package; the interface is
		// sealed by the unexported marker method.
		panic(fmt.Sprintf("unknown native value type %T", v))
	}
}
