package rest

import (
	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c newsroom.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCategories(list []newsroom.Category) []Category {
	return Map(list, NewCategory)
}

func NewStory(s newsroom.Story) Story {
	story := Story{
		ID:          s.ID,
		Title:       s.Title,
		Slug:        s.Slug,
		Excerpt:     s.Excerpt,
		Content:     s.Content,
		Author:      s.Author,
		Image:       s.Image,
		Featured:    s.Featured,
		PublishedAt: s.PublishedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		CategoryID:  s.CategoryID,
	}

	if s.Category != nil {
		story.CategoryName = &s.Category.Name
		story.CategorySlug = &s.Category.Slug
	}

	return story
}

func NewStories(list []newsroom.Story) []Story {
	return Map(list, NewStory)
}

func NewUser(u newsroom.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
