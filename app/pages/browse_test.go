package pages

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	t.Run("five most recent posts", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 7)

		page, err := f.pages.Home(nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Post 7", "Post 6", "Post 5", "Post 4", "Post 3"},
			pageTitles(page.RecentPosts))
		assert.Equal(t, 5, page.End)
		assert.Equal(t, 10, page.NextSet)
	})

	t.Run("fewer posts than a page", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 3)

		page, err := f.pages.Home(nil)
		assert.NoError(t, err)
		assert.Len(t, page.RecentPosts, 3)
		assert.Equal(t, 5, page.End)
		assert.Equal(t, 10, page.NextSet)
	})

	t.Run("author sees own draft on homepage", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 2)
		draft := &models.Post{
			Title:    "Draft",
			AuthorID: f.author.ID,
			PubDate:  time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			Text:     "unfinished",
		}
		assert.NoError(t, f.postRepo.Create(draft))

		page, err := f.pages.Home(f.author)
		assert.NoError(t, err)
		assert.Contains(t, pageTitles(page.RecentPosts), "Draft")

		page, err = f.pages.Home(f.reader)
		assert.NoError(t, err)
		assert.NotContains(t, pageTitles(page.RecentPosts), "Draft")
	})

	t.Run("carries sidebar data", func(t *testing.T) {
		f := newFixture()
		assert.NoError(t, f.catRepo.Create(&models.Category{Name: "Travel"}))
		f.seedPublished(t, 1)

		page, err := f.pages.Home(nil)
		assert.NoError(t, err)
		assert.Len(t, page.Categories, 1)
		assert.Equal(t, map[int][]int{2023: {1}}, page.Archive)
	})
}

func TestOlder(t *testing.T) {
	t.Run("full window with more behind advances", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 20)

		page, err := f.pages.Older(nil, 5, 10)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Post 15", "Post 14", "Post 13", "Post 12", "Post 11"},
			pageTitles(page.Posts))
		assert.Equal(t, 0, page.PrevStart)
		assert.Equal(t, 5, page.PrevEnd)
		assert.Equal(t, 10, page.End)
		if assert.NotNil(t, page.NextSet) {
			assert.Equal(t, 15, *page.NextSet)
		}
	})

	t.Run("short window is the last page", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 6)

		page, err := f.pages.Older(nil, 5, 10)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Post 1"}, pageTitles(page.Posts))
		assert.Equal(t, 5, page.End)
		assert.Nil(t, page.NextSet)
	})

	t.Run("exactly full window with nothing behind", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 10)

		page, err := f.pages.Older(nil, 5, 10)
		assert.NoError(t, err)
		assert.Len(t, page.Posts, 5)
		assert.Nil(t, page.NextSet)
	})

	t.Run("one post past the window advances", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 11)

		page, err := f.pages.Older(nil, 5, 10)
		assert.NoError(t, err)
		if assert.NotNil(t, page.NextSet) {
			assert.Equal(t, 15, *page.NextSet)
		}
	})

	t.Run("narrow window never advances", func(t *testing.T) {
		// The has-more probe compares against the five-post page size,
		// not the requested window width.
		f := newFixture()
		f.seedPublished(t, 20)

		page, err := f.pages.Older(nil, 5, 8)
		assert.NoError(t, err)
		assert.Len(t, page.Posts, 3)
		assert.Equal(t, 2, page.PrevStart)
		assert.Equal(t, 5, page.PrevEnd)
		assert.Equal(t, 5, page.End)
		assert.Nil(t, page.NextSet)
	})

	t.Run("window past the end is empty", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 3)

		page, err := f.pages.Older(nil, 10, 15)
		assert.NoError(t, err)
		assert.Empty(t, page.Posts)
		assert.Nil(t, page.NextSet)
	})
}

func TestAbout(t *testing.T) {
	t.Run("about post present", func(t *testing.T) {
		f := newFixture()
		about := &models.Post{
			Title:     "About Me",
			Published: true,
			AuthorID:  f.author.ID,
			PubDate:   time.Now(),
			Text:      "I write things",
		}
		assert.NoError(t, f.postRepo.Create(about))

		page, err := f.pages.About(nil)
		assert.NoError(t, err)
		if assert.NotNil(t, page.About) {
			assert.Equal(t, "About Me", page.About.Title)
		}
		assert.Equal(t, "", page.Message)
	})

	t.Run("unpublished about post still served", func(t *testing.T) {
		f := newFixture()
		about := &models.Post{
			Title:    "About Me",
			AuthorID: f.author.ID,
			PubDate:  time.Now(),
			Text:     "not published yet",
		}
		assert.NoError(t, f.postRepo.Create(about))

		page, err := f.pages.About(nil)
		assert.NoError(t, err)
		assert.NotNil(t, page.About)
	})

	t.Run("about post missing", func(t *testing.T) {
		f := newFixture()
		f.seedPublished(t, 1)

		page, err := f.pages.About(nil)
		assert.NoError(t, err)
		assert.Nil(t, page.About)
		assert.Equal(t, "You haven't created a post titled 'About Me' yet.", page.Message)
	})
}
