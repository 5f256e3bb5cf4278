// Package adapter specifies the small capability set the bipf codec needs
// from a host value type, and converts between a host type V and the
// codec's internal value.Value tree at that boundary only — the core
// codec never sees a host-specific object shape.
package adapter

import (
	"fmt"

	"github.com/bipfgo/bipf/errs"
	"github.com/bipfgo/bipf/value"
)

// Entry is a (key, value) pair as yielded by Adapter.Entries, in insertion
// order.
type Entry[V any] struct {
	Key   []byte
	Value V
}

// Adapter is the pluggable boundary between a host-runtime value type V and
// the codec's eight-variant value space. Implementations classify a host
// value into one of the eight kinds, read its payload, and construct new
// host values of each kind.
//
// NewBytes may fail: a host type with no native bytes/buffer variant (for
// example a plain JSON-like tree of map/slice/string/float64/bool/nil) has
// nowhere to put a decoded BUFFER frame, and that is a decode error rather
// than a silent downgrade.
type Adapter[V any] interface {
	Kind(v V) value.Kind

	AsString(v V) (string, bool)
	AsBytes(v V) ([]byte, bool)
	AsInt(v V) (int64, bool)
	AsFloat(v V) (float64, bool)
	AsBool(v V) (bool, bool)
	Elements(v V) []V
	Entries(v V) []Entry[V]

	NewNull() V
	NewBool(b bool) V
	NewString(s string) V
	NewBytes(b []byte) (V, error)
	NewInt(i int64) V
	NewFloat(f float64) V
	NewArray(vs []V) V
	NewObject(entries []Entry[V]) V
}

// ToValue converts a host value into the codec's internal value.Value tree
// by repeatedly asking ad to classify and read v and its descendants.
func ToValue[V any](ad Adapter[V], v V) (value.Value, error) {
	switch ad.Kind(v) {
	case value.KindNull:
		return value.Null(), nil
	case value.KindBool:
		b, _ := ad.AsBool(v)
		return value.Bool(b), nil
	case value.KindString:
		s, _ := ad.AsString(v)
		return value.String(s), nil
	case value.KindBytes:
		b, _ := ad.AsBytes(v)
		return value.Bytes(b), nil
	case value.KindInt:
		i, _ := ad.AsInt(v)
		return value.Int(i), nil
	case value.KindFloat:
		f, _ := ad.AsFloat(v)
		return value.Float(f), nil
	case value.KindArray:
		elems := ad.Elements(v)
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			child, err := ToValue(ad, e)
			if err != nil {
				return value.Value{}, fmt.Errorf("array index %d: %w", i, err)
			}
			out[i] = child
		}
		return value.Array(out), nil
	case value.KindObject:
		entries := ad.Entries(v)
		out := make([]value.Entry, len(entries))
		for i, e := range entries {
			child, err := ToValue(ad, e.Value)
			if err != nil {
				return value.Value{}, fmt.Errorf("object key %q: %w", e.Key, err)
			}
			out[i] = value.Entry{Key: e.Key, Value: child}
		}
		return value.Object(out), nil
	default:
		return value.Value{}, fmt.Errorf("%w: unrecognized host kind", errs.ErrUnsupportedValue)
	}
}

// FromValue converts the codec's internal value.Value tree into a host
// value using ad's constructors. It fails if v contains a BUFFER value and
// ad has no bytes variant to hold it.
func FromValue[V any](ad Adapter[V], v value.Value) (V, error) {
	var zero V

	switch v.Kind() {
	case value.KindNull:
		return ad.NewNull(), nil
	case value.KindBool:
		b, _ := v.AsBool()
		return ad.NewBool(b), nil
	case value.KindString:
		s, _ := v.AsString()
		return ad.NewString(s), nil
	case value.KindBytes:
		b, _ := v.AsBytes()
		host, err := ad.NewBytes(b)
		if err != nil {
			return zero, fmt.Errorf("%w: %w", errs.ErrInvalidType, err)
		}
		return host, nil
	case value.KindInt:
		i, _ := v.AsInt()
		return ad.NewInt(i), nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return ad.NewFloat(f), nil
	case value.KindArray:
		children, _ := v.AsArray()
		out := make([]V, len(children))
		for i, c := range children {
			host, err := FromValue(ad, c)
			if err != nil {
				return zero, fmt.Errorf("array index %d: %w", i, err)
			}
			out[i] = host
		}
		return ad.NewArray(out), nil
	case value.KindObject:
		entries, _ := v.AsObject()
		out := make([]Entry[V], len(entries))
		for i, e := range entries {
			host, err := FromValue(ad, e.Value)
			if err != nil {
				return zero, fmt.Errorf("object key %q: %w", e.Key, err)
			}
			out[i] = Entry[V]{Key: e.Key, Value: host}
		}
		return ad.NewObject(out), nil
	default:
		return zero, fmt.Errorf("%w: unrecognized value kind", errs.ErrUnsupportedValue)
	}
}
