// Package value defines the generic, tagged value tree the bipf codec
// encodes and decodes by default: one variant per wire type, plus an
// ordered-key object shape that preserves insertion order and resolves
// duplicate keys to their first occurrence.
package value

import "bytes"

// Kind identifies which of the eight host-value variants a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindBytes
	KindInt
	KindFloat
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Entry is a single (key, value) pair within an Object, in the insertion
// order the object was built or decoded with.
type Entry struct {
	Key   []byte
	Value Value
}

// Value is the internal, tagged representation of a parsed value tree,
// used as the default adapter target for Encode/Decode.
type Value struct {
	kind  Kind
	b     bool
	s     string
	bytes []byte
	i     int64
	f     float64
	arr   []Value
	obj   []Entry
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a UTF-8 string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes wraps an opaque byte slice (the BUFFER wire type).
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// Int wraps a signed integer. At encode time it is classified as INT or
// DOUBLE depending on its magnitude.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating-point number. At encode time it is classified as
// INT or DOUBLE depending on whether it has a zero
// fractional part and fits the INT range.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Array wraps an ordered list of child values.
func Array(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// Object wraps an ordered list of key/value entries. Duplicate keys are
// permitted on construction; encode emits them in order and decode
// preserves the first occurrence when the key is later looked up.
func Object(entries []Entry) Value { return Value{kind: KindObject, obj: entries} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns v's boolean value and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns v's string value and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBytes returns v's byte slice and whether v is a bytes value.
func (v Value) AsBytes() ([]byte, bool) { return v.bytes, v.kind == KindBytes }

// AsInt returns v's integer value and whether v is an int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns v's float value and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsArray returns v's child values and whether v is an array.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns v's entries and whether v is an object.
func (v Value) AsObject() ([]Entry, bool) { return v.obj, v.kind == KindObject }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Get returns the value of the first entry in an object whose key matches
// name, and whether it was found. Only meaningful when v is an object.
func (v Value) Get(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, e := range v.obj {
		if string(e.Key) == name {
			return e.Value, true
		}
	}

	return Value{}, false
}

// Equal reports whether a and b represent the same value tree,
// preserving object key order and treating duplicate keys positionally.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindBytes:
		return bytes.Equal(a.bytes, b.bytes)
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for i := range a.obj {
			if !bytes.Equal(a.obj[i].Key, b.obj[i].Key) {
				return false
			}
			if !Equal(a.obj[i].Value, b.obj[i].Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
