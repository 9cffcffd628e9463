package rpc

import (
	"context"
	"net/http"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

//go:generate zenrpc

// NewsroomService exposes story and category operations over JSON-RPC 2.0.
type NewsroomService struct {
	zenrpc.Service
	manager newsroom.IManager
}

func NewNewsroomService(manager newsroom.IManager) *NewsroomService {
	return &NewsroomService{manager: manager}
}

// rpcError converts a domain error into a zenrpc error carrying the HTTP
// status as its code; anything else passes through as an internal error.
func rpcError(err error) error {
	if domainErr := newsroom.AsError(err); domainErr != nil {
		status := http.StatusInternalServerError
		switch domainErr.Kind {
		case newsroom.KindValidation, newsroom.KindConflict:
			status = http.StatusBadRequest
		case newsroom.KindNotFound:
			status = http.StatusNotFound
		case newsroom.KindUnauthorized:
			status = http.StatusUnauthorized
		}
		return zenrpc.NewStringError(status, domainErr.Message)
	}

	return err
}

// List retrieves stories with optional search, category, featured and
// author filters, sorting and pagination.
//
//zenrpc:filter raw filter values, all optional
//zenrpc:return list of stories with category fields
//zenrpc:400 invalid filter value
//zenrpc:500 internal server error
func (s *NewsroomService) List(ctx context.Context, filter StoryFilter) ([]Story, error) {
	stories, err := s.manager.Stories(ctx, newsroom.StoryListParams{
		Search:     filter.Search,
		CategoryID: filter.CategoryID,
		Featured:   filter.Featured,
		Author:     filter.Author,
		Sort:       filter.Sort,
		Order:      filter.Order,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
	if err != nil {
		return nil, rpcError(err)
	}

	return NewStories(stories), nil
}

// ByID retrieves a single story by ID with its category fields.
//
//zenrpc:id story numeric ID
//zenrpc:return story
//zenrpc:400 id must be positive
//zenrpc:404 story not found
//zenrpc:500 internal server error
func (s *NewsroomService) ByID(ctx context.Context, req StoryByIDRequest) (*Story, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(http.StatusBadRequest, "id must be positive")
	}

	story, err := s.manager.StoryByID(ctx, req.ID)
	if err != nil {
		return nil, rpcError(err)
	}

	result := NewStory(*story)
	return &result, nil
}

// Create persists a new story.
//
//zenrpc:req story fields; title, content, categoryId and author are required
//zenrpc:return created story
//zenrpc:400 missing or invalid field
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *NewsroomService) Create(ctx context.Context, req CreateStoryRequest) (*Story, error) {
	story, err := s.manager.CreateStory(ctx, newsroom.CreateStoryInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		CategoryID:  req.CategoryID,
		Excerpt:     req.Excerpt,
		Image:       req.Image,
		Featured:    req.Featured,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return nil, rpcError(err)
	}

	result := NewStory(*story)
	return &result, nil
}

// Update applies a partial update; omitted fields are left untouched.
//
//zenrpc:req story id plus the fields to change
//zenrpc:return updated story
//zenrpc:400 invalid field
//zenrpc:404 story or category not found
//zenrpc:500 internal server error
func (s *NewsroomService) Update(ctx context.Context, req UpdateStoryRequest) (*Story, error) {
	story, err := s.manager.UpdateStory(ctx, req.ID, newsroom.UpdateStoryInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		CategoryID:  req.CategoryID,
		Excerpt:     req.Excerpt,
		Image:       req.Image,
		Featured:    req.Featured,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return nil, rpcError(err)
	}

	result := NewStory(*story)
	return &result, nil
}

// Delete removes a story and returns its prior snapshot.
//
//zenrpc:id story numeric ID
//zenrpc:return deleted story
//zenrpc:404 story not found
//zenrpc:500 internal server error
func (s *NewsroomService) Delete(ctx context.Context, req StoryByIDRequest) (*Story, error) {
	story, err := s.manager.DeleteStory(ctx, req.ID)
	if err != nil {
		return nil, rpcError(err)
	}

	result := NewStory(*story)
	return &result, nil
}

// Categories retrieves all categories sorted by name.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *NewsroomService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, rpcError(err)
	}

	return NewCategories(categories), nil
}

// CreateCategory creates a category with a slug derived from its name.
//
//zenrpc:req category name and optional description
//zenrpc:return created category
//zenrpc:400 missing name or duplicate
//zenrpc:500 internal server error
func (s *NewsroomService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	category, err := s.manager.CreateCategory(ctx, newsroom.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, rpcError(err)
	}

	result := NewCategory(*category)
	return &result, nil
}
