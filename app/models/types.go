package models

import "time"

// User is a blog author. Authentication and sessions are handled outside
// this application; we only store enough to resolve a credential to an
// author identity.
type User struct {
	ID           int    `json:"id" validate:"required,gte=0"`
	Username     string `json:"username" validate:"required,min=2,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
	PasswordHash string `json:"password_hash" validate:"-"`
}

// Category groups posts. Categories are just a name.
type Category struct {
	ID   int    `json:"id" validate:"required,gte=0"`
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// Post is a single blog article. Unpublished posts are visible only to
// their author. Category, Tags and Images are loaded associations; only
// the foreign keys are persisted with the post itself.
type Post struct {
	ID         int       `json:"id" validate:"required,gte=0"`
	Title      string    `json:"title" validate:"required,min=1,max=1000"`
	Published  bool      `json:"published" validate:"-"`
	CustomURL  string    `json:"custom_url" validate:"max=1000"`
	AuthorID   int       `json:"author_id" validate:"required,gte=0"`
	PubDate    time.Time `json:"pub_date" validate:"required"`
	Text       string    `json:"text" validate:"required,max=10000"`
	CategoryID int       `json:"category_id" validate:"gte=0"`

	Category *Category `json:"category,omitempty" validate:"-"`
	Tags     []*Tag    `json:"tags,omitempty" validate:"-"`
	Images   []*Image  `json:"images,omitempty" validate:"-"`
}

// Tag labels a post. A post may carry any number of tags and nothing
// enforces uniqueness among them.
type Tag struct {
	ID     int    `json:"id" validate:"required,gte=0"`
	PostID int    `json:"post_id" validate:"required,gte=0"`
	Name   string `json:"name" validate:"required,min=1,max=20"`
}

// Image illustrates a post. ImagePath follows the photos/YYYY/MM/DD/<file>
// layout keyed by upload date.
type Image struct {
	ID        int    `json:"id" validate:"required,gte=0"`
	PostID    int    `json:"post_id" validate:"required,gte=0"`
	Name      string `json:"name" validate:"max=20"`
	ImagePath string `json:"image_path" validate:"required"`
	Caption   string `json:"caption" validate:"max=1000"`
}

// Comment is a visitor comment on a post. Comments are held for
// moderation: IsPublic stays false until a moderator approves, and
// IsRemoved hides a comment without deleting it.
type Comment struct {
	ID          int       `json:"id" validate:"required,gte=0"`
	PostID      int       `json:"post_id" validate:"required,gte=0"`
	Author      string    `json:"author" validate:"required,min=1,max=50"`
	Email       string    `json:"email" validate:"omitempty,email"`
	Content     string    `json:"content" validate:"required,min=1,max=3000"`
	IsPublic    bool      `json:"is_public" validate:"-"`
	IsRemoved   bool      `json:"is_removed" validate:"-"`
	SubmittedAt time.Time `json:"submitted_at" validate:"required"`
}
