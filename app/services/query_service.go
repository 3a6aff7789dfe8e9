package services

import (
	"fmt"
	"sort"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// QueryService is the central visibility-filtered post fetcher. Every
// page view goes through it.
type QueryService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
}

// NewQueryService creates a new QueryService
func NewQueryService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository) *QueryService {
	return &QueryService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// GetPosts returns the posts visible to the given user that match the
// filter, newest first. An unauthenticated visitor (nil user) sees only
// published posts. An authenticated user additionally sees their own
// unpublished posts. A nil filter matches everything.
//
// The result is the union of two explicit predicate passes merged by
// post id, so no post appears twice even if a filter matches it through
// both branches.
func (s *QueryService) GetPosts(user *models.User, filter PostFilter) ([]*models.Post, error) {
	if filter == nil {
		filter = MatchAll
	}

	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	results := []*models.Post{}

	// Published posts matching the filter.
	for _, post := range posts {
		if post.Published && filter(post) && !seen[post.ID] {
			seen[post.ID] = true
			results = append(results, post)
		}
	}

	// The user's own unpublished posts matching the filter.
	if user != nil {
		for _, post := range posts {
			if !post.Published && post.AuthorID == user.ID && filter(post) && !seen[post.ID] {
				seen[post.ID] = true
				results = append(results, post)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PubDate.After(results[j].PubDate)
	})

	return results, nil
}

// loadPosts fetches all posts with their category and tags attached, so
// filters can match on them.
func (s *QueryService) loadPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %v", err)
	}

	for _, post := range posts {
		if post.CategoryID > 0 {
			category, err := s.categoryRepo.GetByID(post.CategoryID)
			if err != nil && err != repositories.ErrNotFound {
				return nil, fmt.Errorf("failed to load category for post %d: %v", post.ID, err)
			}
			post.Category = category
		}

		tags, err := s.tagRepo.ListByPost(post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tags for post %d: %v", post.ID, err)
		}
		post.Tags = tags
	}

	return posts, nil
}
