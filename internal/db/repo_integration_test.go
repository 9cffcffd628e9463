package db

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	database, err := SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "skipping integration tests, test database unavailable:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(0)
	}

	testDB = database
	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestCategories_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)

	names := make([]string, len(categories))
	for i := range categories {
		names[i] = categories[i].Name
	}
	assert.Equal(t, []string{"International", "Investigations", "Municipal", "Opinion", "Provincial"}, names)
}

func TestCategoryLookups_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("by id", func(t *testing.T) {
		category, err := repo.CategoryByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "Municipal", category.Name)
	})

	t.Run("by id missing", func(t *testing.T) {
		category, err := repo.CategoryByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, category)
	})

	t.Run("by name", func(t *testing.T) {
		category, err := repo.CategoryByName(ctx, "Opinion")
		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "opinion", category.Slug)
	})

	t.Run("by name missing", func(t *testing.T) {
		category, err := repo.CategoryByName(ctx, "Sports")
		require.NoError(t, err)
		assert.Nil(t, category)
	})

	t.Run("slug taken", func(t *testing.T) {
		taken, err := repo.CategorySlugTaken(ctx, "municipal")
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.CategorySlugTaken(ctx, "municipal-2")
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestInsertCategory_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	category := &Category{
		Name:      "City Hall",
		Slug:      "city-hall",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.InsertCategory(ctx, category))
	assert.NotZero(t, category.ID)

	t.Run("duplicate slug is a unique violation", func(t *testing.T) {
		dup := &Category{Name: "City Hall Again", Slug: "city-hall", CreatedAt: time.Now()}
		err := repo.InsertCategory(ctx, dup)
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})
}

func TestDeleteCategory_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	// Opinion has no seeded stories
	count, err := repo.StoryCountByCategory(ctx, 4)
	require.NoError(t, err)
	require.Zero(t, count)

	require.NoError(t, repo.DeleteCategory(ctx, 4))

	category, err := repo.CategoryByID(ctx, 4)
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestStoryCountByCategory_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	count, err := repo.StoryCountByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStories_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	defaults := StoryFilter{SortColumn: "createdAt", Order: "DESC", Limit: 10}

	t.Run("default listing is newest first with categories", func(t *testing.T) {
		stories, err := repo.Stories(ctx, defaults)
		require.NoError(t, err)
		require.Len(t, stories, 5)
		assert.Equal(t, "city-council-approves-zoning-bylaw", stories[0].Slug)
		assert.Equal(t, "trade-talks-resume-after-stalemate", stories[4].Slug)
		require.NotNil(t, stories[0].Category)
		assert.Equal(t, "Municipal", stories[0].Category.Name)
	})

	t.Run("search matches title excerpt and content case-insensitively", func(t *testing.T) {
		filter := defaults
		filter.Search = "TRANSIT"
		stories, err := repo.Stories(ctx, filter)
		require.NoError(t, err)
		require.Len(t, stories, 1)
		assert.Equal(t, "provincial-budget-targets-transit", stories[0].Slug)
	})

	t.Run("search matches content only", func(t *testing.T) {
		filter := defaults
		filter.Search = "access requests"
		stories, err := repo.Stories(ctx, filter)
		require.NoError(t, err)
		require.Len(t, stories, 1)
		assert.Equal(t, "inside-the-procurement-audit", stories[0].Slug)
	})

	t.Run("category filter", func(t *testing.T) {
		categoryID := 1
		filter := defaults
		filter.CategoryID = &categoryID
		stories, err := repo.Stories(ctx, filter)
		require.NoError(t, err)
		require.Len(t, stories, 2)
	})

	t.Run("featured filter", func(t *testing.T) {
		featured := true
		filter := defaults
		filter.Featured = &featured
		stories, err := repo.Stories(ctx, filter)
		require.NoError(t, err)
		require.Len(t, stories, 1)
		assert.True(t, stories[0].Featured)
	})

	t.Run("author substring filter", func(t *testing.T) {
		filter := defaults
		filter.Author = "reyes"
		stories, err := repo.Stories(ctx, filter)
		require.NoError(t, err)
		require.Len(t, stories, 2)
	})

	t.Run("title sort ascending", func(t *testing.T) {
		filter := defaults
		filter.SortColumn = "title"
		filter.Order = "ASC"
		stories, err := repo.Stories(ctx, filter)
		require.NoError(t, err)
		require.Len(t, stories, 5)
		assert.Equal(t, "City Council Approves Zoning Bylaw", stories[0].Title)
		assert.Equal(t, "Trade Talks Resume After Stalemate", stories[4].Title)
	})

	t.Run("limit and offset paginate", func(t *testing.T) {
		filter := defaults
		filter.Limit = 2
		filter.Offset = 2
		stories, err := repo.Stories(ctx, filter)
		require.NoError(t, err)
		require.Len(t, stories, 2)
		assert.Equal(t, "inside-the-procurement-audit", stories[0].Slug)
	})
}

func TestStoryByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	story, err := repo.StoryByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, story)
	assert.Equal(t, "City Council Approves Zoning Bylaw", story.Title)
	require.NotNil(t, story.Category)
	assert.Equal(t, "municipal", story.Category.Slug)

	missing, err := repo.StoryByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoryBySlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	story, err := repo.StoryBySlug(ctx, "library-expansion-breaks-ground")
	require.NoError(t, err)
	require.NotNil(t, story)
	assert.Equal(t, 4, story.ID)

	missing, err := repo.StoryBySlug(ctx, "no-such-story")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStorySlugTaken_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	taken, err := repo.StorySlugTaken(ctx, "city-council-approves-zoning-bylaw", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.StorySlugTaken(ctx, "city-council-approves-zoning-bylaw", 1)
	require.NoError(t, err)
	assert.False(t, taken, "a story keeps its own slug")

	taken, err = repo.StorySlugTaken(ctx, "brand-new-slug", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestStoryWriteCycle_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	now := time.Now().Truncate(time.Second)
	story := &Story{
		CategoryID: 2,
		Title:      "Water Rates Review Launched",
		Slug:       "water-rates-review-launched",
		Content:    "The utility board opened a rates review.",
		Author:     "Priya Nair",
		Excerpt:    strp("Rates under review."),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, repo.InsertStory(ctx, story))
	require.NotZero(t, story.ID)

	story.Title = "Water Rates Review Underway"
	story.Featured = true
	require.NoError(t, repo.UpdateStory(ctx, story, Columns.Story.Title, Columns.Story.Featured))

	reread, err := repo.StoryByID(ctx, story.ID)
	require.NoError(t, err)
	require.NotNil(t, reread)
	assert.Equal(t, "Water Rates Review Underway", reread.Title)
	assert.True(t, reread.Featured)
	// untouched column
	assert.Equal(t, "water-rates-review-launched", reread.Slug)

	require.NoError(t, repo.DeleteStory(ctx, story.ID))

	gone, err := repo.StoryByID(ctx, story.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUsersAndSessions_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	user, err := repo.UserByEmail(ctx, TestUserEmail)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Test Editor", user.Name)

	missing, err := repo.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	session := &Session{
		Token:     "integration-session-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.InsertSession(ctx, session))

	loaded, err := repo.SessionByToken(ctx, "integration-session-token")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.NotNil(t, loaded.User)
	assert.Equal(t, TestUserEmail, loaded.User.Email)

	require.NoError(t, repo.DeleteSession(ctx, "integration-session-token"))

	gone, err := repo.SessionByToken(ctx, "integration-session-token")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestInsertUser_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	user := &User{
		Email:        "second@example.com",
		Name:         "Second Editor",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.InsertUser(ctx, user))
	assert.NotZero(t, user.ID)

	dup := &User{Email: "second@example.com", Name: "Dup", PasswordHash: "x", CreatedAt: time.Now()}
	err := repo.InsertUser(ctx, dup)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
