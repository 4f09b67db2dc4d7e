package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_ValueOrZero(t *testing.T) {
	t.Parallel()

	t.Run("invalid", func(t *testing.T) {
		var o Of[int]
		assert.EqualValues(t, 0, o.ValueOrZero())
	})
	t.Run("invalid, has value", func(t *testing.T) {
		o := Of[int]{Valid: false, V: 123}
		assert.EqualValues(t, 0, o.ValueOrZero())
	})
	t.Run("valid", func(t *testing.T) {
		o := From(123)
		assert.EqualValues(t, 123, o.ValueOrZero())
	})
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	assert.False(t, FromPtr[int](nil).Valid)
	v := 5
	o := FromPtr(&v)
	assert.True(t, o.Valid)
	assert.EqualValues(t, 5, o.V)
	if assert.NotNil(t, o.Ptr()) {
		assert.EqualValues(t, 5, *o.Ptr())
	}
	assert.Nil(t, Of[int]{}.Ptr())
}

func TestOf_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("null", func(t *testing.T) {
		o := From(3)
		require.NoError(t, o.UnmarshalJSON([]byte("null")))
		assert.False(t, o.Valid)
		assert.EqualValues(t, 0, o.V)
	})
	t.Run("int", func(t *testing.T) {
		var o Of[int]
		require.NoError(t, o.UnmarshalJSON([]byte("-1")))
		assert.True(t, o.Valid)
		assert.EqualValues(t, -1, o.V)
	})
	t.Run("string", func(t *testing.T) {
		var o Of[string]
		require.NoError(t, o.UnmarshalJSON([]byte(`"cafe"`)))
		assert.True(t, o.Valid)
		assert.EqualValues(t, "cafe", o.V)
	})
	t.Run("type mismatch", func(t *testing.T) {
		var o Of[int]
		assert.Error(t, o.UnmarshalJSON([]byte(`"a"`)))
	})
}

func TestOf_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := Of[int]{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = From(42).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "42", string(b))
}

func TestOf_ScanValue(t *testing.T) {
	t.Parallel()

	var o Of[int64]
	require.NoError(t, o.Scan(int64(7)))
	assert.True(t, o.Valid)
	assert.EqualValues(t, 7, o.V)

	require.NoError(t, o.Scan(nil))
	assert.False(t, o.Valid)

	v, err := Of[int64]{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = From(int64(9)).Value()
	require.NoError(t, err)
	assert.EqualValues(t, int64(9), v)
}

func TestOf_UnmarshalParam(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		var o Of[int]
		require.NoError(t, o.UnmarshalParam("3"))
		assert.Equal(t, From(3), o)

		require.NoError(t, o.UnmarshalParam(""))
		assert.False(t, o.Valid)
		assert.Zero(t, o.V)

		assert.Error(t, o.UnmarshalParam("abc"))
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		var o Of[string]
		require.NoError(t, o.UnmarshalParam("카페"))
		assert.Equal(t, From("카페"), o)

		require.NoError(t, o.UnmarshalParam(""))
		assert.False(t, o.Valid)
	})
}
