// Package stringx provides zero-copy conversions between strings and byte
// slices. Results alias the input and must not be mutated.
package stringx

import "unsafe"

func ToString(raw []byte) string {
	return unsafe.String(unsafe.SliceData(raw), len(raw))
}

func ToBytes(value string) []byte {
	return unsafe.Slice(unsafe.StringData(value), len(value))
}
