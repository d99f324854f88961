// Package bytesconv provides zero-copy conversions between byte slices and
// strings. The conversions share memory with their argument, so the usual
// immutability contract of string does not hold: callers own the aliasing
// rules.
package bytesconv

import "unsafe"

// String returns a string backed by the same memory as b. The result is only
// valid while b is not mutated through any alias.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes returns a byte slice backed by the same memory as s. The result must
// never be written to.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
