package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles comment submission and moderation. Every
// submitted comment is held until a moderator approves it; the
// moderation UI itself lives outside this application and only flips
// the flags through Approve and Remove.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Submit stores a new comment awaiting moderation
func (s *CommentService) Submit(comment *models.Comment) error {
	if err := validateComment(comment); err != nil {
		return fmt.Errorf("invalid comment: %v", err)
	}

	// Verify post exists
	if _, err := s.postRepo.GetByID(comment.PostID); err != nil {
		return fmt.Errorf("post not found: %v", err)
	}

	// Forces IsPublic=false until moderated.
	comment.BeforeCreate()

	return s.commentRepo.Create(comment)
}

// Approve marks a comment as public
func (s *CommentService) Approve(id int) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	comment.IsPublic = true
	return s.commentRepo.Update(comment)
}

// Remove hides a comment without deleting it
func (s *CommentService) Remove(id int) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	comment.IsRemoved = true
	return s.commentRepo.Update(comment)
}

// ListPublicByPost retrieves the approved, non-removed comments for a
// post, for display on the detail page.
func (s *CommentService) ListPublicByPost(postID int) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	visible := []*models.Comment{}
	for _, comment := range comments {
		if comment.Visible() {
			visible = append(visible, comment)
		}
	}
	return visible, nil
}

// validateComment validates a comment's fields
func validateComment(comment *models.Comment) error {
	if comment.PostID <= 0 {
		return fmt.Errorf("invalid post ID")
	}
	if comment.Author == "" {
		return fmt.Errorf("author is required")
	}
	if len(comment.Author) > 50 {
		return fmt.Errorf("author name is too long (maximum 50 characters)")
	}
	if comment.Content == "" {
		return fmt.Errorf("content is required")
	}
	if len(comment.Content) > 3000 {
		return fmt.Errorf("content is too long (maximum 3000 characters)")
	}
	return nil
}
