package db

import (
	"context"
)

// IRepository is the storage contract consumed by the newsroom manager.
// *Repository is the go-pg implementation; tests provide manual stubs.
type IRepository interface {
	Ping(ctx context.Context) error
	Close() error

	Categories(ctx context.Context) ([]Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*Category, error)
	CategoryByName(ctx context.Context, name string) (*Category, error)
	CategorySlugTaken(ctx context.Context, slug string) (bool, error)
	InsertCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, categoryID int) error
	StoryCountByCategory(ctx context.Context, categoryID int) (int, error)

	Stories(ctx context.Context, filter StoryFilter) ([]Story, error)
	StoryByID(ctx context.Context, storyID int) (*Story, error)
	StoryBySlug(ctx context.Context, slug string) (*Story, error)
	StorySlugTaken(ctx context.Context, slug string, excludeID int) (bool, error)
	InsertStory(ctx context.Context, story *Story) error
	UpdateStory(ctx context.Context, story *Story, columns ...string) error
	DeleteStory(ctx context.Context, storyID int) error

	UserByEmail(ctx context.Context, email string) (*User, error)
	InsertUser(ctx context.Context, user *User) error
	InsertSession(ctx context.Context, session *Session) error
	SessionByToken(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
}

var _ IRepository = (*Repository)(nil)
