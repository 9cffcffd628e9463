package newsroom

import (
	"context"
)

// IManager defines the newsroom operations consumed by the transport
// layers (REST and RPC).
type IManager interface {
	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, categoryID int) (*Category, error)

	Stories(ctx context.Context, params StoryListParams) ([]Story, error)
	StoryByID(ctx context.Context, storyID int) (*Story, error)
	StoryBySlug(ctx context.Context, slug string) (*Story, error)
	CreateStory(ctx context.Context, input CreateStoryInput) (*Story, error)
	UpdateStory(ctx context.Context, storyID int, input UpdateStoryInput) (*Story, error)
	DeleteStory(ctx context.Context, storyID int) (*Story, error)

	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, creds Credentials) (*AuthSession, error)
	Logout(ctx context.Context, token string) error
	UserByToken(ctx context.Context, token string) (*User, error)
}

var _ IManager = (*Manager)(nil)
