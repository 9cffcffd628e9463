package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

// Categories handles GET /categories
// @Summary List categories
// @Description Retrieves all categories sorted by name ascending
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} rest.ErrorResponse
// @Router /categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// CreateCategory handles POST /categories
// @Summary Create a category
// @Description Creates a category with a slug derived from its name; slug collisions get a numeric suffix
// @Tags categories
// @Accept json
// @Produce json
// @Success 201 {object} rest.Category
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBindError(c, err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), newsroom.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// DeleteCategory handles DELETE /categories?id=
// @Summary Delete a category
// @Description Deletes a category that no story references
// @Tags categories
// @Produce json
// @Param id query int true "Category ID"
// @Success 200 {object} rest.DeleteCategoryResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /categories [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil {
		return h.writeError(c, newsroom.NewValidationError(newsroom.CodeInvalidID, "Valid ID is required"))
	}

	category, derr := h.uc.DeleteCategory(c.Request().Context(), id)
	if derr != nil {
		return h.writeError(c, derr)
	}

	return c.JSON(http.StatusOK, DeleteCategoryResponse{
		Message:         "Category deleted successfully",
		DeletedCategory: NewCategory(*category),
	})
}
