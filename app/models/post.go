package models

import (
	"errors"
	"strings"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.PubDate.IsZero() {
		return errors.New("pub_date cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.PubDate.IsZero() {
		p.PubDate = time.Now()
	}
}

// VisibleTo reports whether the post may be shown to the given user.
// Published posts are visible to everyone; unpublished posts only to
// their author. A nil user is an unauthenticated visitor.
func (p *Post) VisibleTo(user *User) bool {
	if p.Published {
		return true
	}
	return user != nil && user.ID == p.AuthorID
}

// HasTag reports whether the post carries a tag with the given name,
// compared case-insensitively.
func (p *Post) HasTag(name string) bool {
	for _, tag := range p.Tags {
		if strings.EqualFold(tag.Name, name) {
			return true
		}
	}
	return false
}

// CategoryName returns the name of the post's category, or "" when the
// category association has not been loaded.
func (p *Post) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// AddTag attaches a tag to the post
func (p *Post) AddTag(tag *Tag) error {
	if tag == nil {
		return errors.New("tag cannot be nil")
	}

	tag.PostID = p.ID
	p.Tags = append(p.Tags, tag)
	return nil
}

// AddImage attaches an image to the post
func (p *Post) AddImage(image *Image) error {
	if image == nil {
		return errors.New("image cannot be nil")
	}

	image.PostID = p.ID
	p.Images = append(p.Images, image)
	return nil
}
