// Package pages composes the services into one typed response per
// route. Handlers receive already-parsed parameters and return a
// structure of fields for the renderer; routing and templates live
// outside this application.
package pages

import (
	"inkwell/app/models"
	"inkwell/app/services"
)

const (
	// Number of posts on the homepage and each older-posts page.
	postsPerPage = 5

	// Title of the post served by the about page.
	aboutTitle = "About Me"
)

// Pages builds the response payload for each route.
type Pages struct {
	queries  *services.QueryService
	archives *services.ArchiveService
	search   *services.SearchService
	posts    *services.PostService
	comments *services.CommentService
}

// NewPages creates a new Pages
func NewPages(queries *services.QueryService, archives *services.ArchiveService, search *services.SearchService, posts *services.PostService, comments *services.CommentService) *Pages {
	return &Pages{
		queries:  queries,
		archives: archives,
		search:   search,
		posts:    posts,
		comments: comments,
	}
}

// sidebar fetches the visible post list for the user plus the category
// list and year/month archive derived from it. Every page carries this
// data.
func (p *Pages) sidebar(user *models.User) ([]*models.Post, []*models.Category, map[int][]int, error) {
	all, err := p.queries.GetPosts(user, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	categories, archive, err := p.archives.BuildArchives(all)
	if err != nil {
		return nil, nil, nil, err
	}
	return all, categories, archive, nil
}

// slicePosts returns posts[start:end] with both bounds clamped to the
// list, so out-of-range windows yield an empty slice rather than a
// panic.
func slicePosts(posts []*models.Post, start, end int) []*models.Post {
	if start < 0 {
		start = 0
	}
	if start > len(posts) {
		start = len(posts)
	}
	if end < start {
		end = start
	}
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}
