package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgerUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := &models.User{Username: "author", Email: "author@example.com"}
		assert.NoError(t, user.SetPassword("secret"))

		err := repo.Create(user)
		assert.NoError(t, err)
		assert.Greater(t, user.ID, 0)

		retrieved, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "author", retrieved.Username)
		assert.True(t, retrieved.CheckPassword("secret"))
	})

	t.Run("get by username", func(t *testing.T) {
		user, err := repo.GetByUsername("author")
		assert.NoError(t, err)
		assert.Equal(t, "author", user.Username)

		_, err = repo.GetByUsername("nobody")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("update user", func(t *testing.T) {
		user, err := repo.GetByUsername("author")
		assert.NoError(t, err)

		user.Email = "new@example.com"
		assert.NoError(t, repo.Update(user))

		updated, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.Equal(t, ErrNotFound, err)
	})
}
