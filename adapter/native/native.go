// Package native provides a JSON-like host value tree with no bytes/buffer
// variant, and an adapter.Adapter over it. Decoding a BUFFER frame into
// this tree is a decode error rather than a silent downgrade, since the
// tree has no variant to hold raw bytes.
package native

import (
	"errors"

	"github.com/bipfgo/bipf/adapter"
	"github.com/bipfgo/bipf/value"
)

// ErrNoBytesVariant is returned by the Adapter's NewBytes when decoding a
// BUFFER frame into a native tree, which has no variant to hold raw bytes.
var ErrNoBytesVariant = errors.New("native: value tree has no bytes variant")

// Pair is a single ordered key/value entry of an Object.
type Pair struct {
	Key   string
	Value any
}

// Object is an insertion-order-preserving JSON-like object. Plain
// map[string]any cannot represent bipf's ordered-object contract, so
// native values use this slice-backed shape instead.
type Object []Pair

// Get returns the value of the first pair whose key matches name.
func (o Object) Get(name string) (any, bool) {
	for _, p := range o {
		if p.Key == name {
			return p.Value, true
		}
	}

	return nil, false
}

// Adapter implements adapter.Adapter[any] over nil / bool / string /
// int64 / float64 / []any / Object.
type Adapter struct{}

var _ adapter.Adapter[any] = Adapter{}

func (Adapter) Kind(v any) value.Kind {
	switch v.(type) {
	case nil:
		return value.KindNull
	case bool:
		return value.KindBool
	case string:
		return value.KindString
	case int64:
		return value.KindInt
	case float64:
		return value.KindFloat
	case []any:
		return value.KindArray
	case Object:
		return value.KindObject
	default:
		return value.KindNull
	}
}

func (Adapter) AsString(v any) (string, bool) { s, ok := v.(string); return s, ok }
func (Adapter) AsBytes(any) ([]byte, bool)    { return nil, false }
func (Adapter) AsInt(v any) (int64, bool)     { i, ok := v.(int64); return i, ok }
func (Adapter) AsFloat(v any) (float64, bool) { f, ok := v.(float64); return f, ok }
func (Adapter) AsBool(v any) (bool, bool)     { b, ok := v.(bool); return b, ok }

func (Adapter) Elements(v any) []any {
	arr, _ := v.([]any)
	return arr
}

func (Adapter) Entries(v any) []adapter.Entry[any] {
	obj, _ := v.(Object)
	out := make([]adapter.Entry[any], len(obj))
	for i, p := range obj {
		out[i] = adapter.Entry[any]{Key: []byte(p.Key), Value: p.Value}
	}

	return out
}

func (Adapter) NewNull() any       { return nil }
func (Adapter) NewBool(b bool) any { return b }
func (Adapter) NewString(s string) any { return s }

// NewBytes always fails: the native tree has no variant for raw bytes.
func (Adapter) NewBytes([]byte) (any, error) { return nil, ErrNoBytesVariant }

func (Adapter) NewInt(i int64) any     { return i }
func (Adapter) NewFloat(f float64) any { return f }

func (Adapter) NewArray(vs []any) any { return vs }

func (Adapter) NewObject(entries []adapter.Entry[any]) any {
	out := make(Object, len(entries))
	for i, e := range entries {
		out[i] = Pair{Key: string(e.Key), Value: e.Value}
	}

	return out
}
