package adapter

import "github.com/bipfgo/bipf/value"

// Generic is the identity Adapter over the codec's own value.Value tree.
// It lets callers that already hold a value.Value use the Adapter-based
// conversion helpers uniformly with host types that need real translation.
type Generic struct{}

var _ Adapter[value.Value] = Generic{}

func (Generic) Kind(v value.Value) value.Kind { return v.Kind() }

func (Generic) AsString(v value.Value) (string, bool) { return v.AsString() }
func (Generic) AsBytes(v value.Value) ([]byte, bool)  { return v.AsBytes() }
func (Generic) AsInt(v value.Value) (int64, bool)     { return v.AsInt() }
func (Generic) AsFloat(v value.Value) (float64, bool) { return v.AsFloat() }
func (Generic) AsBool(v value.Value) (bool, bool)     { return v.AsBool() }

func (Generic) Elements(v value.Value) []value.Value {
	elems, _ := v.AsArray()
	return elems
}

func (Generic) Entries(v value.Value) []Entry[value.Value] {
	entries, _ := v.AsObject()
	out := make([]Entry[value.Value], len(entries))
	for i, e := range entries {
		out[i] = Entry[value.Value]{Key: e.Key, Value: e.Value}
	}

	return out
}

func (Generic) NewNull() value.Value         { return value.Null() }
func (Generic) NewBool(b bool) value.Value   { return value.Bool(b) }
func (Generic) NewString(s string) value.Value { return value.String(s) }

func (Generic) NewBytes(b []byte) (value.Value, error) { return value.Bytes(b), nil }

func (Generic) NewInt(i int64) value.Value     { return value.Int(i) }
func (Generic) NewFloat(f float64) value.Value { return value.Float(f) }

func (Generic) NewArray(vs []value.Value) value.Value { return value.Array(vs) }

func (Generic) NewObject(entries []Entry[value.Value]) value.Value {
	out := make([]value.Entry, len(entries))
	for i, e := range entries {
		out[i] = value.Entry{Key: e.Key, Value: e.Value}
	}

	return value.Object(out)
}
