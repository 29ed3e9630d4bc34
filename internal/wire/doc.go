// Package wire models the driver-side value domain as a closed tagged
// union.
//
// The driver is dynamically typed on the wire: ten numeric subtypes
// (signed and unsigned widths 8/16/32/64 plus the generic machine int),
// two float widths, bool, text, blob, date, null, and two compound kinds
// (array, object). This package contains type definitions plus the two
// boundary functions FromDriver and ToDriver; it imports nothing from the
// rest of the module so the conversion layer above can depend on it freely.
package wire
