package pages

import (
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
)

func TestPostDetail(t *testing.T) {
	f := newFixture()

	published := &models.Post{
		Title: "Public post", Published: true, AuthorID: f.author.ID,
		PubDate: time.Now(), Text: "readable by all",
	}
	assert.NoError(t, f.postRepo.Create(published))
	assert.NoError(t, f.tagRepo.Create(&models.Tag{PostID: published.ID, Name: "public"}))

	draft := &models.Post{
		Title: "Secret draft", AuthorID: f.author.ID,
		PubDate: time.Now(), Text: "not yet",
	}
	assert.NoError(t, f.postRepo.Create(draft))

	approved := &models.Comment{PostID: published.ID, Author: "V", Content: "nice", IsPublic: true, SubmittedAt: time.Now()}
	assert.NoError(t, f.commentRepo.Create(approved))
	pending := &models.Comment{PostID: published.ID, Author: "W", Content: "pending", SubmittedAt: time.Now()}
	assert.NoError(t, f.commentRepo.Create(pending))
	removed := &models.Comment{PostID: published.ID, Author: "X", Content: "gone", IsPublic: true, IsRemoved: true, SubmittedAt: time.Now()}
	assert.NoError(t, f.commentRepo.Create(removed))

	t.Run("published post with approved comments", func(t *testing.T) {
		page, err := f.pages.PostDetail(nil, published.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Public post", page.Post.Title)
		assert.Equal(t, []string{"public"}, func() []string {
			var names []string
			for _, tag := range page.Tags {
				names = append(names, tag.Name)
			}
			return names
		}())
		if assert.Len(t, page.Comments, 1) {
			assert.Equal(t, "nice", page.Comments[0].Content)
		}
	})

	t.Run("draft served to its author", func(t *testing.T) {
		page, err := f.pages.PostDetail(f.author, draft.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Secret draft", page.Post.Title)
	})

	t.Run("draft hidden from visitors", func(t *testing.T) {
		_, err := f.pages.PostDetail(nil, draft.ID)
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("draft hidden from other users", func(t *testing.T) {
		_, err := f.pages.PostDetail(f.reader, draft.ID)
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := f.pages.PostDetail(nil, 9999)
		assert.Equal(t, repositories.ErrNotFound, err)
	})
}

func TestPosted(t *testing.T) {
	f := newFixture()

	draft := &models.Post{
		Title: "Commented draft", AuthorID: f.author.ID,
		PubDate: time.Now(), Text: "x",
	}
	assert.NoError(t, f.postRepo.Create(draft))

	t.Run("no visibility check", func(t *testing.T) {
		page, err := f.pages.Posted(nil, draft.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Commented draft", page.Post.Title)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := f.pages.Posted(nil, 9999)
		assert.Equal(t, repositories.ErrNotFound, err)
	})
}
