package rest

import (
	"encoding/json"
	"time"
)

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

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeleteStoryResponse struct {
	Message      string `json:"message"`
	DeletedStory Story  `json:"deletedStory"`
}

type DeleteCategoryResponse struct {
	Message         string   `json:"message"`
	DeletedCategory Category `json:"deletedCategory"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type StoriesRequest struct {
	ID         *string `query:"id"`
	Slug       *string `query:"slug"`
	Search     string  `query:"search"`
	CategoryID string  `query:"category_id"`
	Featured   string  `query:"featured"`
	Author     string  `query:"author"`
	Sort       string  `query:"sort"`
	Order      string  `query:"order"`
	Limit      string  `query:"limit"`
	Offset     string  `query:"offset"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateStoryRequest struct {
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	CategoryID  *json.Number `json:"categoryId"`
	Excerpt     string       `json:"excerpt"`
	Image       string       `json:"image"`
	Featured    *bool        `json:"featured"`
	PublishedAt *string      `json:"publishedAt"`
}

// UpdateStoryRequest is a partial update: absent fields stay untouched.
type UpdateStoryRequest struct {
	Title       *string      `json:"title"`
	Content     *string      `json:"content"`
	Author      *string      `json:"author"`
	CategoryID  *json.Number `json:"categoryId"`
	Excerpt     *string      `json:"excerpt"`
	Image       *string      `json:"image"`
	Featured    *bool        `json:"featured"`
	PublishedAt *string      `json:"publishedAt"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
