// Package tag packs and unpacks the (type, length) tuple that prefixes
// every bipf frame into a single varint-encoded integer.
package tag

import "github.com/bipfgo/bipf/format"

// Pack combines a wire type and a body length into the integer that gets
// varint-encoded as a frame's tag: (length << 3) | type.
func Pack(t format.WireType, length int) uint64 {
	return uint64(length)<<3 | uint64(t&0x7)
}

// Unpack splits a decoded tag integer back into its wire type and body
// length.
func Unpack(t uint64) (wireType format.WireType, length int) {
	return format.WireType(t & 0x7), int(t >> 3)
}
