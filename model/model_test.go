package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "users", (&User{}).TableName())
	assert.Equal(t, "groups", (&Group{}).TableName())
	assert.Equal(t, "pins", (&Pin{}).TableName())
	assert.Equal(t, "categories", (&Category{}).TableName())
	assert.Equal(t, "emotions", (&Emotion{}).TableName())
	assert.Equal(t, "follows", (&Follow{}).TableName())
	assert.Equal(t, "r_sessions", (&SessionRecord{}).TableName())
}

func TestUser_Authenticate(t *testing.T) {
	t.Parallel()

	user := &User{Email: "test@example.com"}
	user.SetPassword("testpassword", []byte("0123456789abcdef"))

	assert.NoError(t, user.Authenticate("testpassword"))
	assert.ErrorIs(t, user.Authenticate("wrongpassword"), ErrUserWrongIDOrPassword)
	assert.ErrorIs(t, (&User{}).Authenticate("testpassword"), ErrUserWrongIDOrPassword)
	assert.Error(t, (&User{Password: "zz", Salt: "zz"}).Authenticate("testpassword"))
}
