package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipfgo/bipf/codec"
	"github.com/bipfgo/bipf/value"
)

func TestBuildKeyIndexMatchesSeekKey(t *testing.T) {
	v := value.Object([]value.Entry{
		{Key: []byte("name"), Value: value.String("bipf")},
		{Key: []byte("version"), Value: value.Int(1)},
		{Key: []byte("stable"), Value: value.Bool(true)},
	})

	b, err := codec.Encode(v)
	require.NoError(t, err)

	idx, err := codec.BuildKeyIndex(b, 0)
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())

	for _, key := range []string{"name", "version", "stable"} {
		wantOff, ok := codec.SeekKey(b, 0, []byte(key))
		require.True(t, ok)

		gotOff, ok := codec.SeekKeyIndexed(idx, []byte(key))
		require.True(t, ok)
		require.Equal(t, wantOff, gotOff)
	}

	_, ok := codec.SeekKeyIndexed(idx, []byte("missing"))
	require.False(t, ok)
}

func TestBuildKeyIndexRejectsNonObject(t *testing.T) {
	b, err := codec.Encode(value.Int(1))
	require.NoError(t, err)

	_, err = codec.BuildKeyIndex(b, 0)
	require.Error(t, err)
}
