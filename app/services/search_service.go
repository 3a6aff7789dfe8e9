package services

import (
	"strings"

	"inkwell/app/models"
)

// Stopwords excluded from search queries.
var stopwords = map[string]bool{
	"the": true,
	"a":   true,
	"of":  true,
}

// SearchService matches free-text queries against post titles, bodies,
// tag names and category names.
type SearchService struct {
	queries *QueryService
}

// NewSearchService creates a new SearchService
func NewSearchService(queries *QueryService) *SearchService {
	return &SearchService{queries: queries}
}

// CleanQuery splits the raw query on whitespace, lower-cases each token
// and drops stopwords. The result is echoed back to the caller for
// display alongside the results.
func CleanQuery(rawQuery string) []string {
	var terms []string
	for _, token := range strings.Fields(rawQuery) {
		token = strings.ToLower(token)
		if stopwords[token] {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// Search runs one visibility-filtered whole-word query per cleaned term
// and concatenates the per-term results. A post matching several terms
// appears once per term; results are intentionally not deduplicated
// across terms. An empty query yields an empty result list.
func (s *SearchService) Search(user *models.User, rawQuery string) ([]*models.Post, []string, error) {
	terms := CleanQuery(rawQuery)

	results := []*models.Post{}
	if rawQuery == "" {
		return results, terms, nil
	}

	for _, term := range terms {
		matches, err := s.queries.GetPosts(user, WordMatch(term))
		if err != nil {
			return nil, nil, err
		}
		results = append(results, matches...)
	}

	return results, terms, nil
}
