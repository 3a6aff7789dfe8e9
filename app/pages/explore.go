package pages

import (
	"inkwell/app/models"
	"inkwell/app/services"
)

// ArchivePage is the response for a year/month archive view.
type ArchivePage struct {
	Posts      []*models.Post     `json:"posts"`
	Year       int                `json:"year"`
	Month      int                `json:"month"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// Archive returns the published posts from the given year and month,
// newest first. The archive is a public timeline: unpublished posts are
// excluded even for their own author.
func (p *Pages) Archive(user *models.User, year, month int) (*ArchivePage, error) {
	posts, err := p.queries.GetPosts(nil, services.PublishedIn(year, month))
	if err != nil {
		return nil, err
	}

	_, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	return &ArchivePage{
		Posts:      posts,
		Year:       year,
		Month:      month,
		Categories: categories,
		Archive:    archive,
	}, nil
}

// CategoryPage is the response for a category view.
type CategoryPage struct {
	Posts      []*models.Post     `json:"posts"`
	Category   string             `json:"category"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// Category returns the visible posts whose category name equals the
// given name, compared case-insensitively.
func (p *Pages) Category(user *models.User, name string) (*CategoryPage, error) {
	posts, err := p.queries.GetPosts(user, services.CategoryNamed(name))
	if err != nil {
		return nil, err
	}

	_, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	return &CategoryPage{
		Posts:      posts,
		Category:   name,
		Categories: categories,
		Archive:    archive,
	}, nil
}

// TagsPage is the response for a tag view.
type TagsPage struct {
	Posts      []*models.Post     `json:"posts"`
	Tag        string             `json:"tag"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// Tags returns the visible posts carrying a tag whose name equals the
// given name, compared case-insensitively.
func (p *Pages) Tags(user *models.User, name string) (*TagsPage, error) {
	posts, err := p.queries.GetPosts(user, services.Tagged(name))
	if err != nil {
		return nil, err
	}

	_, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	return &TagsPage{
		Posts:      posts,
		Tag:        name,
		Categories: categories,
		Archive:    archive,
	}, nil
}

// SearchPage is the response for a search view. Results may contain
// the same post once per matched term.
type SearchPage struct {
	Results    []*models.Post     `json:"results"`
	Query      string             `json:"query"`
	Terms      []string           `json:"terms"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// Search runs the free-text query for the user and returns the flat
// result list together with the cleaned query terms.
func (p *Pages) Search(user *models.User, query string) (*SearchPage, error) {
	results, terms, err := p.search.Search(user, query)
	if err != nil {
		return nil, err
	}

	_, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	return &SearchPage{
		Results:    results,
		Query:      query,
		Terms:      terms,
		Categories: categories,
		Archive:    archive,
	}, nil
}
