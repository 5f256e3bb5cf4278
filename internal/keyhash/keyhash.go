// Package keyhash provides an optional xxHash64-backed acceleration index
// for repeated codec.SeekKey lookups against the same encoded OBJECT frame.
//
// Building the index performs one full pass over the object (the same
// traversal an unassisted seek_key would perform for a single lookup);
// every subsequent Lookup is an O(1) map access. Hash collisions are
// resolved by comparing the candidate's stored key bytes against the
// requested key, so a 64-bit hash collision never returns the wrong
// field.
package keyhash

import (
	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of a key's raw bytes.
func Sum(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// entry records where a key's bytes and its value frame live, so a hash
// match can be verified against the real key before being trusted.
type entry struct {
	keyOff   int // offset of the key's body in the source buffer
	keyLen   int
	valueOff int // offset of the value frame's tag varint
}

// Index maps a key's hash to the location of its value frame within a
// single encoded OBJECT, built once via Build and queried many times via
// Lookup.
type Index struct {
	buf     []byte
	entries map[uint64][]entry
}

// Len returns the number of entries indexed.
func (idx *Index) Len() int {
	n := 0
	for _, es := range idx.entries {
		n += len(es)
	}

	return n
}

// Lookup returns the offset of the value frame for key, verifying the
// candidate's stored key bytes match key exactly before returning it. The
// second return value is false if key is not present in the indexed
// object.
func (idx *Index) Lookup(key []byte) (int, bool) {
	if idx == nil {
		return 0, false
	}

	h := Sum(key)
	for _, e := range idx.entries[h] {
		if e.keyLen != len(key) {
			continue
		}
		if string(idx.buf[e.keyOff:e.keyOff+e.keyLen]) == string(key) {
			return e.valueOff, true
		}
	}

	return 0, false
}

// Entry locates one key/value pair of an OBJECT frame, as found by the
// caller's walk of that frame: the key body's offset and length, and the
// offset of the value frame's tag varint. Build takes a slice of these.
type Entry struct {
	KeyOff   int
	KeyLen   int
	ValueOff int
}

// Build constructs an Index over entries already discovered by a single
// walk of an OBJECT frame (performed by the codec package, which knows
// how to parse frames). keyhash itself never parses bipf frames; it only
// indexes the (key location, value location) pairs it is handed.
func Build(buf []byte, entries []Entry) *Index {
	idx := &Index{
		buf:     buf,
		entries: make(map[uint64][]entry, len(entries)),
	}
	for _, e := range entries {
		h := Sum(buf[e.KeyOff : e.KeyOff+e.KeyLen])
		idx.entries[h] = append(idx.entries[h], entry{
			keyOff:   e.KeyOff,
			keyLen:   e.KeyLen,
			valueOff: e.ValueOff,
		})
	}

	return idx
}
