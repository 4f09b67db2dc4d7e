package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traPtitech/traPin/utils/random"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	salt1 := random.Salt()
	salt2 := random.Salt()

	assert.EqualValues(t, HashPassword("test", salt1), HashPassword("test", salt1))
	assert.NotEqual(t, HashPassword("test", salt1), HashPassword("test", salt2))
	assert.NotEqual(t, HashPassword("testtest", salt1), HashPassword("test", salt1))
	assert.Len(t, HashPassword("test", salt1), 64)
}

func TestComparePassword(t *testing.T) {
	t.Parallel()

	salt := random.Salt()
	hashed := HashPassword("password", salt)

	assert.True(t, ComparePassword(hashed, "password", salt))
	assert.False(t, ComparePassword(hashed, "Password", salt))
	assert.False(t, ComparePassword(hashed, "password", random.Salt()))
	assert.False(t, ComparePassword(nil, "password", salt))
}
