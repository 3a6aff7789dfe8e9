package services

import (
	"regexp"
	"strings"

	"inkwell/app/models"
)

// PostFilter is a predicate over a post with its category and tags
// loaded. Filters compose with the visibility rules in QueryService.
type PostFilter func(*models.Post) bool

// MatchAll accepts every post.
func MatchAll(*models.Post) bool { return true }

// CategoryNamed matches posts whose category name equals the given name,
// compared case-insensitively.
func CategoryNamed(name string) PostFilter {
	return func(p *models.Post) bool {
		return p.Category != nil && strings.EqualFold(p.Category.Name, name)
	}
}

// Tagged matches posts carrying a tag whose name equals the given name,
// compared case-insensitively.
func Tagged(name string) PostFilter {
	return func(p *models.Post) bool {
		return p.HasTag(name)
	}
}

// WordMatch matches posts containing the token as a whole word, case-
// insensitively, in the title, body text, any tag name, or the category
// name.
func WordMatch(token string) PostFilter {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
	return func(p *models.Post) bool {
		if re.MatchString(p.Title) || re.MatchString(p.Text) {
			return true
		}
		for _, tag := range p.Tags {
			if re.MatchString(tag.Name) {
				return true
			}
		}
		return p.Category != nil && re.MatchString(p.Category.Name)
	}
}

// PublishedIn matches posts published in the given year and month.
func PublishedIn(year, month int) PostFilter {
	return func(p *models.Post) bool {
		return p.PubDate.Year() == year && int(p.PubDate.Month()) == month
	}
}
