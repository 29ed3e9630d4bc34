package sqlite

import "time"

// Value is a sealed interface over the native value cases the ORM layer
// operates on. Only Integer, Double, Text, Blob, Date, and Null implement
// it. Values are transient: constructed per result cell or per bound
// parameter, never stored by this package.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents the SQL NULL value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) value() {}

// Integer represents a 64-bit signed integer value.
type Integer int64

func (Integer) value() {}

// Double represents a 64-bit floating point value.
type Double float64

func (Double) value() {}

// Text represents a string value.
type Text string

func (Text) value() {}

// Blob represents a binary value. The byte slice is owned by the holder;
// result cells are copied out of driver-owned memory before being wrapped.
type Blob []byte

func (Blob) value() {}

// Date represents a timestamp value.
type Date time.Time

func (Date) value() {}

// Time returns the timestamp as a time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}
