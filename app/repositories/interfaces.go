package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	FindByTitle(title string) (*models.Post, error)
	ListAll() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id int) (*models.Category, error)
	ListAll() ([]*models.Category, error)
	Update(category *models.Category) error
	Delete(id int) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(tag *models.Tag) error
	ListByPost(postID int) ([]*models.Tag, error)
	Delete(id int) error
	DeleteByPost(postID int) error
}

// ImageRepository defines the interface for image data access
type ImageRepository interface {
	Create(image *models.Image) error
	ListByPost(postID int) ([]*models.Image, error)
	Delete(id int) error
	DeleteByPost(postID int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
	DeleteByPost(postID int) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}
