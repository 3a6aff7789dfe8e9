package pages

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostDetailPage is the response for the full view of a single post.
type PostDetailPage struct {
	Post       *models.Post       `json:"post"`
	Tags       []*models.Tag      `json:"tags"`
	Comments   []*models.Comment  `json:"comments"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// PostDetail returns the post with the given id together with its tags
// and approved comments. An unpublished post is served only to its
// author; any other requester gets ErrNotFound, so the response does
// not reveal whether the post exists.
func (p *Pages) PostDetail(user *models.User, id int) (*PostDetailPage, error) {
	post, err := p.posts.GetPost(id)
	if err != nil {
		return nil, err
	}

	if !post.VisibleTo(user) {
		return nil, repositories.ErrNotFound
	}

	comments, err := p.comments.ListPublicByPost(id)
	if err != nil {
		return nil, err
	}

	_, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	return &PostDetailPage{
		Post:       post,
		Tags:       post.Tags,
		Comments:   comments,
		Categories: categories,
		Archive:    archive,
	}, nil
}

// PostedPage is the confirmation view shown right after a comment
// submission.
type PostedPage struct {
	Post       *models.Post       `json:"post"`
	Categories []*models.Category `json:"categories"`
	Archive    map[int][]int      `json:"archive"`
}

// Posted returns the confirmation payload for the given post. The post
// is fetched unconditionally: the visitor just submitted a comment on
// it, so no visibility check applies.
func (p *Pages) Posted(user *models.User, id int) (*PostedPage, error) {
	post, err := p.posts.GetPost(id)
	if err != nil {
		return nil, err
	}

	_, categories, archive, err := p.sidebar(user)
	if err != nil {
		return nil, err
	}

	return &PostedPage{
		Post:       post,
		Categories: categories,
		Archive:    archive,
	}, nil
}
