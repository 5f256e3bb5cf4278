package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipfgo/bipf/value"
)

func TestConstructorsAndAccessors(t *testing.T) {
	require.True(t, value.Null().IsNull())

	b := value.Bool(true)
	got, ok := b.AsBool()
	require.True(t, ok)
	require.True(t, got)

	s := value.String("hello")
	str, ok := s.AsString()
	require.True(t, ok)
	require.Equal(t, "hello", str)

	by := value.Bytes([]byte{1, 2, 3})
	gotBytes, ok := by.AsBytes()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, gotBytes)

	i := value.Int(-15)
	gotI, ok := i.AsInt()
	require.True(t, ok)
	require.Equal(t, int64(-15), gotI)

	f := value.Float(3.5)
	gotF, ok := f.AsFloat()
	require.True(t, ok)
	require.InDelta(t, 3.5, gotF, 0)
}

func TestObjectGetPreservesFirstDuplicate(t *testing.T) {
	obj := value.Object([]value.Entry{
		{Key: []byte("a"), Value: value.Int(1)},
		{Key: []byte("a"), Value: value.Int(2)},
	})

	got, ok := obj.Get("a")
	require.True(t, ok)
	n, _ := got.AsInt()
	require.Equal(t, int64(1), n)
}

func TestEqualDeep(t *testing.T) {
	a := value.Object([]value.Entry{
		{Key: []byte("hello"), Value: value.String("unnecessary")},
		{Key: []byte("dependencies"), Value: value.Object([]value.Entry{
			{Key: []byte("rust"), Value: value.String("v2.0.1")},
		})},
	})
	b := value.Object([]value.Entry{
		{Key: []byte("hello"), Value: value.String("unnecessary")},
		{Key: []byte("dependencies"), Value: value.Object([]value.Entry{
			{Key: []byte("rust"), Value: value.String("v2.0.1")},
		})},
	})
	require.True(t, value.Equal(a, b))

	c := value.Object([]value.Entry{
		{Key: []byte("dependencies"), Value: value.Object([]value.Entry{
			{Key: []byte("rust"), Value: value.String("v2.0.1")},
		})},
		{Key: []byte("hello"), Value: value.String("unnecessary")},
	})
	require.False(t, value.Equal(a, c), "key order must matter for Equal")
}
