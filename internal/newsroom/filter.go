package newsroom

import (
	"strconv"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	defaultSortColumn = "createdAt"
	defaultOrder      = "DESC"
)

// validSortColumns are the stories columns a client may sort by.
// Anything else silently falls back to createdAt.
var validSortColumns = map[string]struct{}{
	"publishedAt": {},
	"createdAt":   {},
	"title":       {},
}

// StoryListParams carries raw, unvalidated query values for listing stories.
type StoryListParams struct {
	Search     string
	CategoryID string
	Featured   string
	Author     string
	Sort       string
	Order      string
	Limit      string
	Offset     string
}

// normalize validates and defaults the raw params into a storage filter:
// sort whitelisted with silent fallback, order asc|desc defaulting to desc,
// limit defaulting to 10 and capped at 100, offset defaulting to 0.
// A category id that does not parse as an integer is a validation error.
func (p StoryListParams) normalize() (db.StoryFilter, error) {
	filter := db.StoryFilter{
		Search:     p.Search,
		Author:     p.Author,
		SortColumn: defaultSortColumn,
		Order:      defaultOrder,
		Limit:      defaultLimit,
	}

	if p.CategoryID != "" {
		id, err := strconv.Atoi(p.CategoryID)
		if err != nil {
			return filter, NewValidationError(CodeInvalidCategoryID, "Valid category ID is required")
		}
		filter.CategoryID = &id
	}

	if p.Featured != "" {
		featured := p.Featured == "true" || p.Featured == "1"
		filter.Featured = &featured
	}

	if _, ok := validSortColumns[p.Sort]; ok {
		filter.SortColumn = p.Sort
	}

	if p.Order == "asc" {
		filter.Order = "ASC"
	}

	if p.Limit != "" {
		if n, err := strconv.Atoi(p.Limit); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	if p.Offset != "" {
		if n, err := strconv.Atoi(p.Offset); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	return filter, nil
}
