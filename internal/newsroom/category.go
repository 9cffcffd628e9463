package newsroom

import (
	"context"
	"fmt"
	"strings"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

type CreateCategoryInput struct {
	Name        string
	Description string
}

// Categories retrieves all categories sorted by name ascending.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// CreateCategory creates a category with a slug derived from its trimmed
// name. Slug collisions are resolved by numeric suffix probing; the unique
// indexes on name and slug remain the durable guard, so a lost race still
// surfaces as a conflict rather than a duplicate row.
func (m *Manager) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError(CodeMissingRequiredField, "Name is required and must be a non-empty string")
	}

	existing, err := m.db.CategoryByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("db get category by name: %w", err)
	}
	if existing != nil {
		return nil, NewConflictError(CodeDuplicateName, "Category name already exists")
	}

	slug, err := m.uniqueCategorySlug(ctx, Slugify(name))
	if err != nil {
		return nil, err
	}

	category := &db.Category{
		Name:      name,
		Slug:      slug,
		CreatedAt: m.now(),
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		category.Description = &description
	}

	if err := m.db.InsertCategory(ctx, category); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, NewConflictError(CodeDuplicateName, "Category name already exists")
		}
		return nil, fmt.Errorf("db insert category: %w", err)
	}

	result := NewCategory(category)
	return &result, nil
}

// DeleteCategory removes a category that no story references and returns
// its prior snapshot. Referencing stories make the delete a conflict
// (restrict policy), backed by the ON DELETE RESTRICT foreign key.
func (m *Manager) DeleteCategory(ctx context.Context, categoryID int) (*Category, error) {
	category, err := m.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	}
	if category == nil {
		return nil, NewNotFoundError(CodeCategoryNotFound, "Category not found")
	}

	count, err := m.db.StoryCountByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db count stories by category: %w", err)
	}
	if count > 0 {
		return nil, NewConflictError(CodeCategoryInUse, "Category has stories and cannot be deleted")
	}

	if err := m.db.DeleteCategory(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("db delete category: %w", err)
	}

	result := NewCategory(category)
	return &result, nil
}

// uniqueCategorySlug probes base, base-1, base-2, ... sequentially and
// returns the first slug not already taken.
func (m *Manager) uniqueCategorySlug(ctx context.Context, base string) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		taken, err := m.db.CategorySlugTaken(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("db check category slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
