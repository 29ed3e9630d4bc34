package wire

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// FromDriver lifts a value scanned out of the driver into the wire union.
// database/sql hands back int64, float64, bool, []byte, string, time.Time,
// or nil; the remaining Go numeric widths are accepted so callers can feed
// raw Go values through the same path. Byte slices are copied because the
// driver may reuse its buffer on the next row.
func FromDriver(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case int8:
		return Int8(val), nil
	case int16:
		return Int16(val), nil
	case int32:
		return Int32(val), nil
	case int64:
		return Int64(val), nil
	case uint8:
		return Uint8(val), nil
	case uint16:
		return Uint16(val), nil
	case uint32:
		return Uint32(val), nil
	case uint64:
		return Uint64(val), nil
	case int:
		return Int(val), nil
	case float32:
		return Float32(val), nil
	case float64:
		return Float64(val), nil
	case bool:
		return Bool(val), nil
	case string:
		return Text(val), nil
	case []byte:
		b := make([]byte, len(val))
		copy(b, val)
		return Blob(b), nil
	case time.Time:
		return Date(val), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			wv, err := FromDriver(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = wv
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			wv, err := FromDriver(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = wv
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported driver value type %T", v)
	}
}

// ToDriver lowers a wire value to a bind argument for the driver. Compound
// kinds cannot be bound; everything else maps onto the driver.Value set
// (int64, float64, bool, []byte, string, time.Time, nil).
func ToDriver(v Value) (driver.Value, error) {
	switch val := v.(type) {
	case Null:
		return nil, nil
	case Int8:
		return int64(val), nil
	case Int16:
		return int64(val), nil
	case Int32:
		return int64(val), nil
	case Int64:
		return int64(val), nil
	case Uint8:
		return int64(val), nil
	case Uint16:
		return int64(val), nil
	case Uint32:
		return int64(val), nil
	case Uint64:
		return int64(val), nil
	case Int:
		return int64(val), nil
	case Float32:
		return float64(val), nil
	case Float64:
		return float64(val), nil
	case Bool:
		return bool(val), nil
	case Text:
		return string(val), nil
	case Blob:
		return []byte(val), nil
	case Date:
		return time.Time(val), nil
	case Array, Object:
		return nil, fmt.Errorf("compound wire value %T cannot be bound", v)
	default:
		return nil, fmt.Errorf("unknown wire value type %T", v)
	}
}
