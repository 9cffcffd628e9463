package rpc

import (
	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

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
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = NewCategory(list[i])
	}
	return categories
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
	stories := make([]Story, len(list))
	for i := range list {
		stories[i] = NewStory(list[i])
	}
	return stories
}
