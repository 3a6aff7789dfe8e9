package pages

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// HomePage is the response for the homepage: the most recent visible
// posts plus pagination cursors for the older-posts link.
type HomePage struct {
	RecentPosts []*models.Post     `json:"recent_posts"`
	End         int                `json:"end"`
	NextSet     int                `json:"next_set"`
	Categories  []*models.Category `json:"categories"`
	Archive     map[int][]int      `json:"archive"`
}

// Home returns the five most recent posts visible to the user.
func (p *Pages) Home(user *models.User) (*HomePage, error) {
	all, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	start := 0
	end := start + postsPerPage
	nextSet := end + postsPerPage

	return &HomePage{
		RecentPosts: slicePosts(all, start, end),
		End:         end,
		NextSet:     nextSet,
		Categories:  categories,
		Archive:     archive,
	}, nil
}

// OlderPage is the response for a subsequent page of posts. NextSet is
// nil when there are no further pages.
type OlderPage struct {
	Posts      []*models.Post     `json:"posts"`
	PrevStart  int                `json:"prev_start"`
	PrevEnd    int                `json:"prev_end"`
	End        int                `json:"end"`
	NextSet    *int               `json:"next_set"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// Older returns the [end:nextSet] window of the visible post list,
// with cursors for the neighbouring windows. Whether another page
// exists is decided by probing one element past the current window:
// the cursors advance only when len(all[end:nextSet+1]) exceeds
// postsPerPage, i.e. only when the window was full and at least one
// post follows it. The probe compares against the fixed five-post
// threshold rather than the window width, so a caller paging with a
// narrower window never advances. This mirrors the behavior the site
// has always had, and the pagination tests pin it down.
func (p *Pages) Older(user *models.User, end, nextSet int) (*OlderPage, error) {
	all, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	width := nextSet - end
	prevStart, prevEnd := end-width, end
	posts := slicePosts(all, end, nextSet)

	var next *int
	outEnd := end
	if len(slicePosts(all, end, nextSet+1)) > postsPerPage {
		outEnd = end + width
		n := nextSet + width
		next = &n
	}

	return &OlderPage{
		Posts:      posts,
		PrevStart:  prevStart,
		PrevEnd:    prevEnd,
		End:        outEnd,
		NextSet:    next,
		Categories: categories,
		Archive:    archive,
	}, nil
}

// AboutPage is the response for the about page. About is nil and
// Message is set when no post with the about title exists.
type AboutPage struct {
	About      *models.Post       `json:"about"`
	Message    string             `json:"message"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// About returns the post titled "About Me", regardless of publication
// state. When the post is missing the page degrades to an advisory
// message instead of an error.
func (p *Pages) About(user *models.User) (*AboutPage, error) {
	about, err := p.posts.GetPostByTitle(aboutTitle)
	message := ""
	if err == repositories.ErrNotFound {
		about = nil
		message = "You haven't created a post titled 'About Me' yet."
	} else if err != nil {
		return nil, err
	}

	_, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	return &AboutPage{
		About:      about,
		Message:    message,
		Categories: categories,
		Archive:    archive,
	}, nil
}
