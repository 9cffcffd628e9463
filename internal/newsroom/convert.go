package newsroom

import (
	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewCategories(list []db.Category) []Category {
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = NewCategory(&list[i])
	}
	return categories
}

func NewStory(s *db.Story) Story {
	story := Story{Story: *s}

	if s.Category != nil {
		category := NewCategory(s.Category)
		story.Category = &category
	}

	return story
}

func NewStories(list []db.Story) []Story {
	stories := make([]Story, len(list))
	for i := range list {
		stories[i] = NewStory(&list[i])
	}
	return stories
}

func NewUser(u *db.User) User {
	return User{User: *u}
}
