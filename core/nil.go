// File: nil.go
// Role: nil-reference detection for arbitrary comparable node types.
package core

import "reflect"

// isNilNode reports whether n is a nil reference. For value kinds
// (ints, strings, structs, ...) this is always false; the zero value
// of a value kind is a legal node. Only the comparable reference
// kinds — pointers, channels, unsafe pointers — and interface-typed T
// holding nil are rejected.
func isNilNode[T comparable](n T) bool {
	rv := reflect.ValueOf(n)
	if !rv.IsValid() {
		// T is an interface type and n is its nil value.
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
