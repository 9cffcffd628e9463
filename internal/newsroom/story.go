package newsroom

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

// CreateStoryInput carries the fields of a story creation request.
// CategoryID is kept raw so a non-numeric value can be reported as a
// validation error rather than a decoding failure.
type CreateStoryInput struct {
	Title       string
	Content     string
	Author      string
	CategoryID  string
	Excerpt     string
	Image       string
	Featured    bool
	PublishedAt string
}

// UpdateStoryInput is a partial update: nil fields are left untouched.
// An empty PublishedAt clears the publication timestamp.
type UpdateStoryInput struct {
	Title       *string
	Content     *string
	Author      *string
	CategoryID  *string
	Excerpt     *string
	Image       *string
	Featured    *bool
	PublishedAt *string
}

// Stories retrieves stories matching the raw list params, each joined with
// its category.
func (m *Manager) Stories(ctx context.Context, params StoryListParams) ([]Story, error) {
	filter, err := params.normalize()
	if err != nil {
		return nil, err
	}

	list, err := m.db.Stories(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get stories: %w", err)
	}

	return NewStories(list), nil
}

func (m *Manager) StoryByID(ctx context.Context, storyID int) (*Story, error) {
	story, err := m.db.StoryByID(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("db get story by id: %w", err)
	}
	if story == nil {
		return nil, NewNotFoundError(CodeStoryNotFound, "Story not found")
	}

	result := NewStory(story)
	return &result, nil
}

func (m *Manager) StoryBySlug(ctx context.Context, slug string) (*Story, error) {
	story, err := m.db.StoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get story by slug: %w", err)
	}
	if story == nil {
		return nil, NewNotFoundError(CodeStoryNotFound, "Story not found")
	}

	result := NewStory(story)
	return &result, nil
}

// CreateStory validates the input, resolves the category, derives a unique
// slug from the trimmed title and persists the story. The returned story
// has its category loaded.
func (m *Manager) CreateStory(ctx context.Context, input CreateStoryInput) (*Story, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, NewValidationError(CodeMissingTitle, "Title is required")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, NewValidationError(CodeMissingContent, "Content is required")
	}

	if strings.TrimSpace(input.CategoryID) == "" {
		return nil, NewValidationError(CodeMissingCategoryID, "Category ID is required")
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		return nil, NewValidationError(CodeMissingAuthor, "Author is required")
	}

	categoryID, err := strconv.Atoi(strings.TrimSpace(input.CategoryID))
	if err != nil {
		return nil, NewValidationError(CodeInvalidCategoryID, "Valid category ID is required")
	}

	category, err := m.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	}
	if category == nil {
		return nil, NewNotFoundError(CodeCategoryNotFound, "Category not found")
	}

	slug, err := m.uniqueStorySlug(ctx, Slugify(title), 0)
	if err != nil {
		return nil, err
	}

	publishedAt, derr := parsePublishedAt(input.PublishedAt)
	if derr != nil {
		return nil, derr
	}

	now := m.now()
	story := &db.Story{
		Title:       title,
		Slug:        slug,
		Content:     content,
		Author:      author,
		CategoryID:  categoryID,
		Featured:    input.Featured,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if excerpt := strings.TrimSpace(input.Excerpt); excerpt != "" {
		story.Excerpt = &excerpt
	}
	if image := strings.TrimSpace(input.Image); image != "" {
		story.Image = &image
	}

	if err := m.db.InsertStory(ctx, story); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, NewConflictError(CodeDuplicateSlug, "Story slug already exists")
		}
		return nil, fmt.Errorf("db insert story: %w", err)
	}

	return m.StoryByID(ctx, story.ID)
}

// UpdateStory applies a partial update: only supplied fields change,
// a supplied title regenerates the slug, a supplied category id is
// re-validated, and updatedAt is always refreshed.
func (m *Manager) UpdateStory(ctx context.Context, storyID int, input UpdateStoryInput) (*Story, error) {
	story, err := m.db.StoryByID(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("db get story by id: %w", err)
	}
	if story == nil {
		return nil, NewNotFoundError(CodeStoryNotFound, "Story not found")
	}

	columns := make([]string, 0, 8)

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, NewValidationError(CodeInvalidTitle, "Title cannot be empty")
		}

		slug, err := m.uniqueStorySlug(ctx, Slugify(title), storyID)
		if err != nil {
			return nil, err
		}

		story.Title = title
		story.Slug = slug
		columns = append(columns, db.Columns.Story.Title, db.Columns.Story.Slug)
	}

	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, NewValidationError(CodeInvalidContent, "Content cannot be empty")
		}
		story.Content = content
		columns = append(columns, db.Columns.Story.Content)
	}

	if input.Author != nil {
		author := strings.TrimSpace(*input.Author)
		if author == "" {
			return nil, NewValidationError(CodeInvalidAuthor, "Author cannot be empty")
		}
		story.Author = author
		columns = append(columns, db.Columns.Story.Author)
	}

	if input.CategoryID != nil {
		categoryID, err := strconv.Atoi(strings.TrimSpace(*input.CategoryID))
		if err != nil {
			return nil, NewValidationError(CodeInvalidCategoryID, "Valid category ID is required")
		}

		category, err := m.db.CategoryByID(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("db get category by id: %w", err)
		}
		if category == nil {
			return nil, NewNotFoundError(CodeCategoryNotFound, "Category not found")
		}

		story.CategoryID = categoryID
		columns = append(columns, db.Columns.Story.CategoryID)
	}

	if input.Excerpt != nil {
		if excerpt := strings.TrimSpace(*input.Excerpt); excerpt != "" {
			story.Excerpt = &excerpt
		} else {
			story.Excerpt = nil
		}
		columns = append(columns, db.Columns.Story.Excerpt)
	}

	if input.Image != nil {
		if image := strings.TrimSpace(*input.Image); image != "" {
			story.Image = &image
		} else {
			story.Image = nil
		}
		columns = append(columns, db.Columns.Story.Image)
	}

	if input.Featured != nil {
		story.Featured = *input.Featured
		columns = append(columns, db.Columns.Story.Featured)
	}

	if input.PublishedAt != nil {
		publishedAt, derr := parsePublishedAt(*input.PublishedAt)
		if derr != nil {
			return nil, derr
		}
		story.PublishedAt = publishedAt
		columns = append(columns, db.Columns.Story.PublishedAt)
	}

	story.UpdatedAt = m.now()
	columns = append(columns, db.Columns.Story.UpdatedAt)

	if err := m.db.UpdateStory(ctx, story, columns...); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, NewConflictError(CodeDuplicateSlug, "Story slug already exists")
		}
		return nil, fmt.Errorf("db update story: %w", err)
	}

	return m.StoryByID(ctx, storyID)
}

// DeleteStory removes a story and returns its prior snapshot.
func (m *Manager) DeleteStory(ctx context.Context, storyID int) (*Story, error) {
	story, err := m.db.StoryByID(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("db get story by id: %w", err)
	}
	if story == nil {
		return nil, NewNotFoundError(CodeStoryNotFound, "Story not found")
	}

	if err := m.db.DeleteStory(ctx, storyID); err != nil {
		return nil, fmt.Errorf("db delete story: %w", err)
	}

	result := NewStory(story)
	return &result, nil
}

// uniqueStorySlug probes base, base-1, base-2, ... and returns the first
// slug no other story uses. excludeID keeps a story's own slug valid when
// its title is re-saved unchanged.
func (m *Manager) uniqueStorySlug(ctx context.Context, base string, excludeID int) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		taken, err := m.db.StorySlugTaken(ctx, slug, excludeID)
		if err != nil {
			return "", fmt.Errorf("db check story slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// parsePublishedAt interprets an optional publication timestamp: empty
// clears it, otherwise RFC 3339 is required.
func parsePublishedAt(raw string) (*time.Time, *Error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, NewValidationError(CodeInvalidPublishedAt, "publishedAt must be an RFC 3339 timestamp")
	}

	return &t, nil
}
