package models

import (
	"errors"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.SubmittedAt.IsZero() {
		return errors.New("submitted_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation. Every new
// comment starts out unapproved.
func (c *Comment) BeforeCreate() {
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now()
	}
	c.IsPublic = false
	c.IsRemoved = false
}

// Visible reports whether the comment has been approved by a moderator
// and not since removed.
func (c *Comment) Visible() bool {
	return c.IsPublic && !c.IsRemoved
}

// SetPost links the comment to the given post
func (c *Comment) SetPost(post *Post) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}

	c.PostID = post.ID
	return nil
}
