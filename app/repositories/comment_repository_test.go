package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgerCommentRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBadgerCommentRepository(db)

	t.Run("create and get comment", func(t *testing.T) {
		comment := &models.Comment{
			PostID:      1,
			Author:      "Visitor",
			Content:     "Nice post!",
			SubmittedAt: time.Now(),
		}

		err := repo.Create(comment)
		assert.NoError(t, err)
		assert.Greater(t, comment.ID, 0)

		retrieved, err := repo.GetByID(comment.ID)
		assert.NoError(t, err)
		assert.Equal(t, comment.Author, retrieved.Author)
		assert.Equal(t, comment.Content, retrieved.Content)
	})

	t.Run("get missing comment", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("list by post", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Comment{PostID: 2, Author: "A", Content: "one", SubmittedAt: time.Now()}))
		assert.NoError(t, repo.Create(&models.Comment{PostID: 2, Author: "B", Content: "two", SubmittedAt: time.Now()}))
		assert.NoError(t, repo.Create(&models.Comment{PostID: 3, Author: "C", Content: "elsewhere", SubmittedAt: time.Now()}))

		comments, err := repo.ListByPost(2)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)

		comments, err = repo.ListByPost(404)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("update comment", func(t *testing.T) {
		comment := &models.Comment{
			PostID:      4,
			Author:      "Visitor",
			Content:     "Awaiting moderation",
			SubmittedAt: time.Now(),
		}
		assert.NoError(t, repo.Create(comment))

		comment.IsPublic = true
		assert.NoError(t, repo.Update(comment))

		updated, err := repo.GetByID(comment.ID)
		assert.NoError(t, err)
		assert.True(t, updated.IsPublic)
	})

	t.Run("delete comment", func(t *testing.T) {
		comment := &models.Comment{
			PostID:      5,
			Author:      "Visitor",
			Content:     "Gone soon",
			SubmittedAt: time.Now(),
		}
		assert.NoError(t, repo.Create(comment))
		assert.NoError(t, repo.Delete(comment.ID))

		_, err := repo.GetByID(comment.ID)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete by post", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Comment{PostID: 6, Author: "A", Content: "x", SubmittedAt: time.Now()}))
		assert.NoError(t, repo.Create(&models.Comment{PostID: 6, Author: "B", Content: "y", SubmittedAt: time.Now()}))

		assert.NoError(t, repo.DeleteByPost(6))

		comments, err := repo.ListByPost(6)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})
}
