package services

import (
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles authoring operations on posts: creation, editing,
// tagging, images and deletion with ownership cascade.
type PostService struct {
	postRepo    repositories.PostRepository
	tagRepo     repositories.TagRepository
	imageRepo   repositories.ImageRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, tagRepo repositories.TagRepository, imageRepo repositories.ImageRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		tagRepo:     tagRepo,
		imageRepo:   imageRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new blog post with validation
func (s *PostService) CreatePost(post *models.Post) error {
	if err := validatePost(post); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	post.BeforeCreate()

	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID with its tags and images attached
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %v", err)
	}
	post.Tags = tags

	images, err := s.imageRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get images: %v", err)
	}
	post.Images = images

	return post, nil
}

// GetPostByTitle retrieves a post by its exact title, regardless of
// publication state. Used by the about page.
func (s *PostService) GetPostByTitle(title string) (*models.Post, error) {
	post, err := s.postRepo.FindByTitle(title)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByPost(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %v", err)
	}
	post.Tags = tags

	images, err := s.imageRepo.ListByPost(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get images: %v", err)
	}
	post.Images = images

	return post, nil
}

// UpdatePost updates an existing post with validation. Posts stay
// mutable after publication; the published flag just toggles
// visibility.
func (s *PostService) UpdatePost(post *models.Post) error {
	if err := validatePost(post); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	existing, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return err
	}

	// The author never changes on edit.
	post.AuthorID = existing.AuthorID

	return s.postRepo.Update(post)
}

// DeletePost deletes a post together with its owned tags, images and
// comments.
func (s *PostService) DeletePost(id int) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.tagRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete tags: %v", err)
	}
	if err := s.imageRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete images: %v", err)
	}
	if err := s.commentRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete comments: %v", err)
	}

	return s.postRepo.Delete(id)
}

// AttachTag adds a tag to an existing post
func (s *PostService) AttachTag(postID int, name string) (*models.Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if len(name) > 20 {
		return nil, fmt.Errorf("tag name is too long (maximum 20 characters)")
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post not found: %v", err)
	}

	tag := &models.Tag{PostID: postID, Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// AttachImage adds an image to an existing post. The stored path is
// derived from the upload date.
func (s *PostService) AttachImage(postID int, name, filename, caption string, uploadedAt time.Time) (*models.Image, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post not found: %v", err)
	}

	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}

	image := &models.Image{
		PostID:    postID,
		Name:      name,
		ImagePath: models.UploadPath(uploadedAt, filename),
		Caption:   caption,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// validatePost validates a post's fields
func validatePost(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(post.Title) > 1000 {
		return fmt.Errorf("title is too long (maximum 1000 characters)")
	}
	if post.Text == "" {
		return fmt.Errorf("text is required")
	}
	if len(post.Text) > 10000 {
		return fmt.Errorf("text is too long (maximum 10000 characters)")
	}
	if post.AuthorID <= 0 {
		return fmt.Errorf("author is required")
	}
	return nil
}
