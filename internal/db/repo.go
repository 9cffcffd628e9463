package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// StoryFilter describes an already-normalized story listing request:
// SortColumn is one of the stories columns, Order is "ASC" or "DESC",
// Limit and Offset are non-negative.
type StoryFilter struct {
	Search     string
	CategoryID *int
	Featured   *bool
	Author     string
	SortColumn string
	Order      string
	Limit      int
	Offset     int
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-index
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryByName(ctx context.Context, name string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."name" = ?`, name).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return category, nil
}

func (r *Repository) CategorySlugTaken(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."slug" = ?`, slug).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}

	return exists, nil
}

func (r *Repository) InsertCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) error {
	_, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."categoryId" = ?`, categoryID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (r *Repository) StoryCountByCategory(ctx context.Context, categoryID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Story)(nil)).
		Where(`"t"."categoryId" = ?`, categoryID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count stories by category: %w", err)
	}

	return count, nil
}

// Stories retrieves stories matching the filter, each with its category
// loaded. Search matches title, excerpt or content as a case-insensitive
// substring; the remaining predicates are AND-combined.
func (r *Repository) Stories(ctx context.Context, filter StoryFilter) ([]Story, error) {
	var stories []Story
	query := r.db.ModelContext(ctx, &stories).
		Relation(Columns.Story.Category)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."excerpt" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern)
			return q, nil
		})
	}

	if filter.CategoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *filter.CategoryID)
	}

	if filter.Featured != nil {
		query = query.Where(`"t"."featured" = ?`, *filter.Featured)
	}

	if filter.Author != "" {
		query = query.Where(`"t"."author" ILIKE ?`, "%"+filter.Author+"%")
	}

	err := query.
		OrderExpr(`"t".? ?`, pg.Ident(filter.SortColumn), pg.Safe(filter.Order)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}

	return stories, nil
}

func (r *Repository) StoryByID(ctx context.Context, storyID int) (*Story, error) {
	story := &Story{}
	err := r.db.ModelContext(ctx, story).
		Relation(Columns.Story.Category).
		Where(`"t"."storyId" = ?`, storyID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get story by id: %w", err)
	}

	return story, nil
}

func (r *Repository) StoryBySlug(ctx context.Context, slug string) (*Story, error) {
	story := &Story{}
	err := r.db.ModelContext(ctx, story).
		Relation(Columns.Story.Category).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get story by slug: %w", err)
	}

	return story, nil
}

// StorySlugTaken reports whether another story already uses slug.
// excludeID skips the story being updated; pass 0 on insert.
func (r *Repository) StorySlugTaken(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := r.db.ModelContext(ctx, (*Story)(nil)).
		Where(`"t"."slug" = ?`, slug)

	if excludeID != 0 {
		query = query.Where(`"t"."storyId" != ?`, excludeID)
	}

	exists, err := query.Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check story slug: %w", err)
	}

	return exists, nil
}

func (r *Repository) InsertStory(ctx context.Context, story *Story) error {
	if _, err := r.db.ModelContext(ctx, story).Insert(); err != nil {
		return fmt.Errorf("failed to insert story: %w", err)
	}

	return nil
}

// UpdateStory writes only the given columns of story, keyed by primary key.
func (r *Repository) UpdateStory(ctx context.Context, story *Story, columns ...string) error {
	_, err := r.db.ModelContext(ctx, story).
		Column(columns...).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update story: %w", err)
	}

	return nil
}

func (r *Repository) DeleteStory(ctx context.Context, storyID int) error {
	_, err := r.db.ModelContext(ctx, (*Story)(nil)).
		Where(`"t"."storyId" = ?`, storyID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}

	return nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) InsertUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *Repository) InsertSession(ctx context.Context, session *Session) error {
	if _, err := r.db.ModelContext(ctx, session).Insert(); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

func (r *Repository) SessionByToken(ctx context.Context, token string) (*Session, error) {
	session := &Session{}
	err := r.db.ModelContext(ctx, session).
		Relation(Columns.Session.User).
		Where(`"t"."token" = ?`, token).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}

	return session, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ModelContext(ctx, (*Session)(nil)).
		Where(`"t"."token" = ?`, token).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
