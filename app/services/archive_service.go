package services

import (
	"fmt"
	"sort"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// ArchiveService derives the sidebar navigation data: the full category
// list and the year-to-months publication index.
type ArchiveService struct {
	categoryRepo repositories.CategoryRepository
}

// NewArchiveService creates a new ArchiveService
func NewArchiveService(categoryRepo repositories.CategoryRepository) *ArchiveService {
	return &ArchiveService{categoryRepo: categoryRepo}
}

// BuildArchives returns every category in the system plus, for the given
// post sequence, a map of year to the months of that year with at least
// one post, ascending and deduplicated. The category list is unfiltered,
// not limited to categories in use.
func (s *ArchiveService) BuildArchives(posts []*models.Post) ([]*models.Category, map[int][]int, error) {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list categories: %v", err)
	}

	archive := make(map[int][]int)
	for _, post := range posts {
		year := post.PubDate.Year()
		month := int(post.PubDate.Month())
		if !containsMonth(archive[year], month) {
			archive[year] = append(archive[year], month)
		}
	}
	for year := range archive {
		sort.Ints(archive[year])
	}

	return categories, archive, nil
}

func containsMonth(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
