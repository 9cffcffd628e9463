package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// mockManager is a manual stub implementation of newsroom.IManager
type mockManager struct {
	categoriesFunc     func(ctx context.Context) ([]newsroom.Category, error)
	createCategoryFunc func(ctx context.Context, input newsroom.CreateCategoryInput) (*newsroom.Category, error)
	deleteCategoryFunc func(ctx context.Context, categoryID int) (*newsroom.Category, error)

	storiesFunc     func(ctx context.Context, params newsroom.StoryListParams) ([]newsroom.Story, error)
	storyByIDFunc   func(ctx context.Context, storyID int) (*newsroom.Story, error)
	storyBySlugFunc func(ctx context.Context, slug string) (*newsroom.Story, error)
	createStoryFunc func(ctx context.Context, input newsroom.CreateStoryInput) (*newsroom.Story, error)
	updateStoryFunc func(ctx context.Context, storyID int, input newsroom.UpdateStoryInput) (*newsroom.Story, error)
	deleteStoryFunc func(ctx context.Context, storyID int) (*newsroom.Story, error)

	registerFunc    func(ctx context.Context, input newsroom.RegisterInput) (*newsroom.User, error)
	loginFunc       func(ctx context.Context, creds newsroom.Credentials) (*newsroom.AuthSession, error)
	logoutFunc      func(ctx context.Context, token string) error
	userByTokenFunc func(ctx context.Context, token string) (*newsroom.User, error)
}

func (m *mockManager) Categories(ctx context.Context) ([]newsroom.Category, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockManager) CreateCategory(ctx context.Context, input newsroom.CreateCategoryInput) (*newsroom.Category, error) {
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(ctx, input)
	}
	return &newsroom.Category{}, nil
}

func (m *mockManager) DeleteCategory(ctx context.Context, categoryID int) (*newsroom.Category, error) {
	if m.deleteCategoryFunc != nil {
		return m.deleteCategoryFunc(ctx, categoryID)
	}
	return &newsroom.Category{}, nil
}

func (m *mockManager) Stories(ctx context.Context, params newsroom.StoryListParams) ([]newsroom.Story, error) {
	if m.storiesFunc != nil {
		return m.storiesFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockManager) StoryByID(ctx context.Context, storyID int) (*newsroom.Story, error) {
	if m.storyByIDFunc != nil {
		return m.storyByIDFunc(ctx, storyID)
	}
	return &newsroom.Story{}, nil
}

func (m *mockManager) StoryBySlug(ctx context.Context, slug string) (*newsroom.Story, error) {
	if m.storyBySlugFunc != nil {
		return m.storyBySlugFunc(ctx, slug)
	}
	return &newsroom.Story{}, nil
}

func (m *mockManager) CreateStory(ctx context.Context, input newsroom.CreateStoryInput) (*newsroom.Story, error) {
	if m.createStoryFunc != nil {
		return m.createStoryFunc(ctx, input)
	}
	return &newsroom.Story{}, nil
}

func (m *mockManager) UpdateStory(ctx context.Context, storyID int, input newsroom.UpdateStoryInput) (*newsroom.Story, error) {
	if m.updateStoryFunc != nil {
		return m.updateStoryFunc(ctx, storyID, input)
	}
	return &newsroom.Story{}, nil
}

func (m *mockManager) DeleteStory(ctx context.Context, storyID int) (*newsroom.Story, error) {
	if m.deleteStoryFunc != nil {
		return m.deleteStoryFunc(ctx, storyID)
	}
	return &newsroom.Story{}, nil
}

func (m *mockManager) Register(ctx context.Context, input newsroom.RegisterInput) (*newsroom.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, input)
	}
	return &newsroom.User{}, nil
}

func (m *mockManager) Login(ctx context.Context, creds newsroom.Credentials) (*newsroom.AuthSession, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, creds)
	}
	return &newsroom.AuthSession{}, nil
}

func (m *mockManager) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return nil
}

func (m *mockManager) UserByToken(ctx context.Context, token string) (*newsroom.User, error) {
	if m.userByTokenFunc != nil {
		return m.userByTokenFunc(ctx, token)
	}
	return nil, newsroom.NewUnauthorizedError(newsroom.CodeUnauthorized, "Authentication required")
}

// allowAuth stubs session resolution so write endpoints can be exercised.
func allowAuth(m *mockManager) *mockManager {
	m.userByTokenFunc = func(ctx context.Context, token string) (*newsroom.User, error) {
		if token == "" {
			return nil, newsroom.NewUnauthorizedError(newsroom.CodeUnauthorized, "Authentication required")
		}
		return &newsroom.User{}, nil
	}
	return m
}
