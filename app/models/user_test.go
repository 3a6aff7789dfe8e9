package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPassword(t *testing.T) {
	user := &User{ID: 1, Username: "author"}

	err := user.SetPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "correct horse")

	assert.True(t, user.CheckPassword("correct horse battery staple"))
	assert.False(t, user.CheckPassword("wrong password"))
	assert.False(t, user.CheckPassword(""))
}

func TestUserValidation(t *testing.T) {
	valid := &User{ID: 1, Username: "author", Email: "author@example.com"}
	assert.NoError(t, valid.Validate())

	noName := &User{ID: 1}
	assert.Error(t, noName.Validate())

	badEmail := &User{ID: 1, Username: "author", Email: "nope"}
	assert.Error(t, badEmail.Validate())
}
