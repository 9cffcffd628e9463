package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

func parseStoryID(raw string) (int, *newsroom.Error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newsroom.NewValidationError(newsroom.CodeInvalidID, "Valid ID is required")
	}
	return id, nil
}

// Stories handles GET /stories
// @Summary List stories, or fetch one by id or slug
// @Description Lists stories with optional search, category, featured and author filters, sorting and pagination. With ?id= or ?slug= returns a single story with its category fields.
// @Tags stories
// @Produce json
// @Param id query int false "Fetch a single story by ID"
// @Param slug query string false "Fetch a single story by slug"
// @Param search query string false "Substring match on title, excerpt or content"
// @Param category_id query int false "Filter by category ID"
// @Param featured query string false "Filter by featured flag (true/1)"
// @Param author query string false "Substring match on author"
// @Param sort query string false "Sort column: publishedAt|createdAt|title (default createdAt)"
// @Param order query string false "asc or desc (default desc)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {array} rest.Story
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /stories [get]
func (h *Handler) Stories(c echo.Context) error {
	var req StoriesRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBindError(c, err)
	}

	if req.ID != nil {
		id, derr := parseStoryID(*req.ID)
		if derr != nil {
			return h.writeError(c, derr)
		}

		story, err := h.uc.StoryByID(c.Request().Context(), id)
		if err != nil {
			return h.writeError(c, err)
		}

		return c.JSON(http.StatusOK, NewStory(*story))
	}

	if req.Slug != nil {
		story, err := h.uc.StoryBySlug(c.Request().Context(), *req.Slug)
		if err != nil {
			return h.writeError(c, err)
		}

		return c.JSON(http.StatusOK, NewStory(*story))
	}

	stories, err := h.uc.Stories(c.Request().Context(), newsroom.StoryListParams{
		Search:     req.Search,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
		Author:     req.Author,
		Sort:       req.Sort,
		Order:      req.Order,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewStories(stories))
}

// StoryByID handles GET /stories/:id
// @Summary Get story by ID
// @Tags stories
// @Produce json
// @Param id path int true "Story ID"
// @Success 200 {object} rest.Story
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /stories/{id} [get]
func (h *Handler) StoryByID(c echo.Context) error {
	id, derr := parseStoryID(c.Param("id"))
	if derr != nil {
		return h.writeError(c, derr)
	}

	story, err := h.uc.StoryByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewStory(*story))
}

// CreateStory handles POST /stories
// @Summary Create a story
// @Tags stories
// @Accept json
// @Produce json
// @Success 201 {object} rest.Story
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /stories [post]
func (h *Handler) CreateStory(c echo.Context) error {
	var req CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBindError(c, err)
	}

	input := newsroom.CreateStoryInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Excerpt: req.Excerpt,
		Image:   req.Image,
	}
	if req.CategoryID != nil {
		input.CategoryID = req.CategoryID.String()
	}
	if req.Featured != nil {
		input.Featured = *req.Featured
	}
	if req.PublishedAt != nil {
		input.PublishedAt = *req.PublishedAt
	}

	story, err := h.uc.CreateStory(c.Request().Context(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewStory(*story))
}

func updateStoryInput(req UpdateStoryRequest) newsroom.UpdateStoryInput {
	input := newsroom.UpdateStoryInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		Excerpt:     req.Excerpt,
		Image:       req.Image,
		Featured:    req.Featured,
		PublishedAt: req.PublishedAt,
	}
	if req.CategoryID != nil {
		categoryID := req.CategoryID.String()
		input.CategoryID = &categoryID
	}
	return input
}

// UpdateStoryByQuery handles PUT /stories?id=
// @Summary Update a story (query-id form)
// @Tags stories
// @Accept json
// @Produce json
// @Param id query int true "Story ID"
// @Success 200 {object} rest.Story
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /stories [put]
func (h *Handler) UpdateStoryByQuery(c echo.Context) error {
	id, derr := parseStoryID(c.QueryParam("id"))
	if derr != nil {
		return h.writeError(c, derr)
	}

	var req UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBindError(c, err)
	}

	story, err := h.uc.UpdateStory(c.Request().Context(), id, updateStoryInput(req))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewStory(*story))
}

// UpdateStoryByPath handles PUT /stories/:id
// @Summary Update a story (path-id form)
// @Tags stories
// @Accept json
// @Produce json
// @Param id path int true "Story ID"
// @Success 200 {object} rest.Story
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /stories/{id} [put]
func (h *Handler) UpdateStoryByPath(c echo.Context) error {
	id, derr := parseStoryID(c.Param("id"))
	if derr != nil {
		return h.writeError(c, derr)
	}

	var req UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBindError(c, err)
	}

	story, err := h.uc.UpdateStory(c.Request().Context(), id, updateStoryInput(req))
	if err != nil {
		return h.writeUpdateErrorPathForm(c, err)
	}

	return c.JSON(http.StatusOK, NewStory(*story))
}

func (h *Handler) deleteStory(c echo.Context, rawID string) error {
	id, derr := parseStoryID(rawID)
	if derr != nil {
		return h.writeError(c, derr)
	}

	story, err := h.uc.DeleteStory(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, DeleteStoryResponse{
		Message:      "Story deleted successfully",
		DeletedStory: NewStory(*story),
	})
}

// DeleteStoryByQuery handles DELETE /stories?id=
// @Summary Delete a story (query-id form)
// @Tags stories
// @Produce json
// @Param id query int true "Story ID"
// @Success 200 {object} rest.DeleteStoryResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /stories [delete]
func (h *Handler) DeleteStoryByQuery(c echo.Context) error {
	return h.deleteStory(c, c.QueryParam("id"))
}

// DeleteStoryByPath handles DELETE /stories/:id
// @Summary Delete a story (path-id form)
// @Tags stories
// @Produce json
// @Param id path int true "Story ID"
// @Success 200 {object} rest.DeleteStoryResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /stories/{id} [delete]
func (h *Handler) DeleteStoryByPath(c echo.Context) error {
	return h.deleteStory(c, c.Param("id"))
}
