package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgerTagRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBadgerTagRepository(db)

	t.Run("create and list by post", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Tag{PostID: 1, Name: "go"}))
		assert.NoError(t, repo.Create(&models.Tag{PostID: 1, Name: "blog"}))
		assert.NoError(t, repo.Create(&models.Tag{PostID: 2, Name: "travel"}))

		tags, err := repo.ListByPost(1)
		assert.NoError(t, err)
		assert.Len(t, tags, 2)

		tags, err = repo.ListByPost(3)
		assert.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("duplicate names allowed", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Tag{PostID: 4, Name: "dup"}))
		assert.NoError(t, repo.Create(&models.Tag{PostID: 4, Name: "dup"}))

		tags, err := repo.ListByPost(4)
		assert.NoError(t, err)
		assert.Len(t, tags, 2)
	})

	t.Run("delete tag", func(t *testing.T) {
		tag := &models.Tag{PostID: 5, Name: "solo"}
		assert.NoError(t, repo.Create(tag))
		assert.NoError(t, repo.Delete(tag.ID))

		tags, err := repo.ListByPost(5)
		assert.NoError(t, err)
		assert.Empty(t, tags)

		assert.Equal(t, ErrNotFound, repo.Delete(tag.ID))
	})

	t.Run("delete by post", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Tag{PostID: 6, Name: "a"}))
		assert.NoError(t, repo.Create(&models.Tag{PostID: 6, Name: "b"}))
		assert.NoError(t, repo.Create(&models.Tag{PostID: 7, Name: "keep"}))

		assert.NoError(t, repo.DeleteByPost(6))

		tags, err := repo.ListByPost(6)
		assert.NoError(t, err)
		assert.Empty(t, tags)

		tags, err = repo.ListByPost(7)
		assert.NoError(t, err)
		assert.Len(t, tags, 1)
	})
}

func TestBadgerImageRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBadgerImageRepository(db)

	t.Run("create and list by post", func(t *testing.T) {
		image := &models.Image{
			PostID:    1,
			Name:      "sunset",
			ImagePath: "photos/2023/04/09/sunset.jpg",
			Caption:   "The sun, setting",
		}
		assert.NoError(t, repo.Create(image))
		assert.Greater(t, image.ID, 0)

		images, err := repo.ListByPost(1)
		assert.NoError(t, err)
		assert.Len(t, images, 1)
		assert.Equal(t, "photos/2023/04/09/sunset.jpg", images[0].ImagePath)
	})

	t.Run("delete by post", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Image{PostID: 2, ImagePath: "photos/2023/01/01/a.jpg"}))
		assert.NoError(t, repo.Create(&models.Image{PostID: 2, ImagePath: "photos/2023/01/01/b.jpg"}))

		assert.NoError(t, repo.DeleteByPost(2))

		images, err := repo.ListByPost(2)
		assert.NoError(t, err)
		assert.Empty(t, images)
	})
}
