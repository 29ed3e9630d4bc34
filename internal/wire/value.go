package wire

import "time"

// Value is a sealed interface over every wire-level value kind the driver
// can carry. Only the types in this file implement it.
type Value interface {
	wireValue() // Sealed - only these types implement it
}

// Null represents the wire null marker.
type Null struct{}

func (Null) wireValue() {}

// Int8 through Uint64 are the fixed-width numeric subtypes. Int is the
// generic machine-width integer.
type (
	Int8   int8
	Int16  int16
	Int32  int32
	Int64  int64
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	Int    int
)

func (Int8) wireValue()   {}
func (Int16) wireValue()  {}
func (Int32) wireValue()  {}
func (Int64) wireValue()  {}
func (Uint8) wireValue()  {}
func (Uint16) wireValue() {}
func (Uint32) wireValue() {}
func (Uint64) wireValue() {}
func (Int) wireValue()    {}

// Float32 and Float64 are the two floating point widths.
type (
	Float32 float32
	Float64 float64
)

func (Float32) wireValue() {}
func (Float64) wireValue() {}

// Bool represents a boolean wire value.
type Bool bool

func (Bool) wireValue() {}

// Text represents a string wire value.
type Text string

func (Text) wireValue() {}

// Blob represents a binary wire value.
type Blob []byte

func (Blob) wireValue() {}

// Date represents a timestamp wire value.
type Date time.Time

func (Date) wireValue() {}

// Array is a compound wire value: an ordered sequence of wire values.
// It has no native representation above this layer.
type Array []Value

func (Array) wireValue() {}

// Object is a compound wire value: named wire values.
// It has no native representation above this layer.
type Object map[string]Value

func (Object) wireValue() {}
