package rpc

import "time"

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Story struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Excerpt      *string    `json:"excerpt"`
	Content      string     `json:"content"`
	Author       string     `json:"author"`
	Image        *string    `json:"image"`
	Featured     bool       `json:"featured"`
	PublishedAt  *time.Time `json:"publishedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	CategoryID   int        `json:"categoryId"`
	CategoryName *string    `json:"categoryName"`
	CategorySlug *string    `json:"categorySlug"`
}

type StoryFilter struct {
	Search     string `json:"search"`
	CategoryID string `json:"categoryId"`
	Featured   string `json:"featured"`
	Author     string `json:"author"`
	Sort       string `json:"sort"`
	Order      string `json:"order"`
	Limit      string `json:"limit"`
	Offset     string `json:"offset"`
}

type StoryByIDRequest struct {
	ID int `json:"id"`
}

type CreateStoryRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	CategoryID  string `json:"categoryId"`
	Excerpt     string `json:"excerpt"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	PublishedAt string `json:"publishedAt"`
}

type UpdateStoryRequest struct {
	ID          int     `json:"id"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Author      *string `json:"author"`
	CategoryID  *string `json:"categoryId"`
	Excerpt     *string `json:"excerpt"`
	Image       *string `json:"image"`
	Featured    *bool   `json:"featured"`
	PublishedAt *string `json:"publishedAt"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
