package newsroom

import (
	"context"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

// mockRepository is a manual stub implementation of db.IRepository
type mockRepository struct {
	categoriesFunc           func(ctx context.Context) ([]db.Category, error)
	categoryByIDFunc         func(ctx context.Context, categoryID int) (*db.Category, error)
	categoryByNameFunc       func(ctx context.Context, name string) (*db.Category, error)
	categorySlugTakenFunc    func(ctx context.Context, slug string) (bool, error)
	insertCategoryFunc       func(ctx context.Context, category *db.Category) error
	deleteCategoryFunc       func(ctx context.Context, categoryID int) error
	storyCountByCategoryFunc func(ctx context.Context, categoryID int) (int, error)

	storiesFunc        func(ctx context.Context, filter db.StoryFilter) ([]db.Story, error)
	storyByIDFunc      func(ctx context.Context, storyID int) (*db.Story, error)
	storyBySlugFunc    func(ctx context.Context, slug string) (*db.Story, error)
	storySlugTakenFunc func(ctx context.Context, slug string, excludeID int) (bool, error)
	insertStoryFunc    func(ctx context.Context, story *db.Story) error
	updateStoryFunc    func(ctx context.Context, story *db.Story, columns ...string) error
	deleteStoryFunc    func(ctx context.Context, storyID int) error

	userByEmailFunc    func(ctx context.Context, email string) (*db.User, error)
	insertUserFunc     func(ctx context.Context, user *db.User) error
	insertSessionFunc  func(ctx context.Context, session *db.Session) error
	sessionByTokenFunc func(ctx context.Context, token string) (*db.Session, error)
	deleteSessionFunc  func(ctx context.Context, token string) error
}

func (m *mockRepository) Ping(ctx context.Context) error {
	return nil
}

func (m *mockRepository) Close() error {
	return nil
}

func (m *mockRepository) Categories(ctx context.Context) ([]db.Category, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) CategoryByID(ctx context.Context, categoryID int) (*db.Category, error) {
	if m.categoryByIDFunc != nil {
		return m.categoryByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockRepository) CategoryByName(ctx context.Context, name string) (*db.Category, error) {
	if m.categoryByNameFunc != nil {
		return m.categoryByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockRepository) CategorySlugTaken(ctx context.Context, slug string) (bool, error) {
	if m.categorySlugTakenFunc != nil {
		return m.categorySlugTakenFunc(ctx, slug)
	}
	return false, nil
}

func (m *mockRepository) InsertCategory(ctx context.Context, category *db.Category) error {
	if m.insertCategoryFunc != nil {
		return m.insertCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockRepository) DeleteCategory(ctx context.Context, categoryID int) error {
	if m.deleteCategoryFunc != nil {
		return m.deleteCategoryFunc(ctx, categoryID)
	}
	return nil
}

func (m *mockRepository) StoryCountByCategory(ctx context.Context, categoryID int) (int, error) {
	if m.storyCountByCategoryFunc != nil {
		return m.storyCountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}

func (m *mockRepository) Stories(ctx context.Context, filter db.StoryFilter) ([]db.Story, error) {
	if m.storiesFunc != nil {
		return m.storiesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockRepository) StoryByID(ctx context.Context, storyID int) (*db.Story, error) {
	if m.storyByIDFunc != nil {
		return m.storyByIDFunc(ctx, storyID)
	}
	return nil, nil
}

func (m *mockRepository) StoryBySlug(ctx context.Context, slug string) (*db.Story, error) {
	if m.storyBySlugFunc != nil {
		return m.storyBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockRepository) StorySlugTaken(ctx context.Context, slug string, excludeID int) (bool, error) {
	if m.storySlugTakenFunc != nil {
		return m.storySlugTakenFunc(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *mockRepository) InsertStory(ctx context.Context, story *db.Story) error {
	if m.insertStoryFunc != nil {
		return m.insertStoryFunc(ctx, story)
	}
	return nil
}

func (m *mockRepository) UpdateStory(ctx context.Context, story *db.Story, columns ...string) error {
	if m.updateStoryFunc != nil {
		return m.updateStoryFunc(ctx, story, columns...)
	}
	return nil
}

func (m *mockRepository) DeleteStory(ctx context.Context, storyID int) error {
	if m.deleteStoryFunc != nil {
		return m.deleteStoryFunc(ctx, storyID)
	}
	return nil
}

func (m *mockRepository) UserByEmail(ctx context.Context, email string) (*db.User, error) {
	if m.userByEmailFunc != nil {
		return m.userByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockRepository) InsertUser(ctx context.Context, user *db.User) error {
	if m.insertUserFunc != nil {
		return m.insertUserFunc(ctx, user)
	}
	return nil
}

func (m *mockRepository) InsertSession(ctx context.Context, session *db.Session) error {
	if m.insertSessionFunc != nil {
		return m.insertSessionFunc(ctx, session)
	}
	return nil
}

func (m *mockRepository) SessionByToken(ctx context.Context, token string) (*db.Session, error) {
	if m.sessionByTokenFunc != nil {
		return m.sessionByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockRepository) DeleteSession(ctx context.Context, token string) error {
	if m.deleteSessionFunc != nil {
		return m.deleteSessionFunc(ctx, token)
	}
	return nil
}
