// Package varint implements the unsigned LEB128-style 7-bit continuation
// encoding used for every frame's tag in the bipf wire format.
//
// A varint is used for one purpose only: encoding the packed (type, length)
// tag at the head of a frame. The wire format has no other use for it.
package varint

import (
	"fmt"

	"github.com/bipfgo/bipf/errs"
)

// MaxBytes is the maximum number of bytes a varint can occupy before it is
// considered malformed. 10 bytes covers the full 64-bit range with 7 bits
// of payload per byte.
const MaxBytes = 10

// Size returns the number of bytes the minimal encoding of u would occupy,
// without allocating or writing anything.
func Size(u uint64) int {
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}

	return n
}

// Append writes the minimal encoding of u to dst and returns the extended
// slice.
func Append(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}

	return append(dst, byte(u))
}

// Put writes the minimal encoding of u into buf, which must have enough
// room (Size(u) bytes), and returns the number of bytes written.
func Put(buf []byte, u uint64) int {
	n := 0
	for u >= 0x80 {
		buf[n] = byte(u) | 0x80
		u >>= 7
		n++
	}
	buf[n] = byte(u)

	return n + 1
}

// Decode reads a varint from buf starting at off and returns the decoded
// value along with the number of bytes consumed. It fails with
// errs.ErrUnexpectedEnd if the buffer ends before a terminating byte is
// found, and errs.ErrInvalidVarint if MaxBytes bytes are read without a
// terminating byte among them.
func Decode(buf []byte, off int) (value uint64, consumed int, err error) {
	var shift uint
	for i := 0; i < MaxBytes; i++ {
		pos := off + i
		if pos >= len(buf) {
			return 0, 0, fmt.Errorf("%w: varint truncated at offset %d", errs.ErrUnexpectedEnd, off)
		}

		b := buf[pos]
		value |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return value, i + 1, nil
		}
		shift += 7
	}

	return 0, 0, fmt.Errorf("%w: exceeds %d bytes at offset %d", errs.ErrInvalidVarint, MaxBytes, off)
}
