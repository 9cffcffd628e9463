package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

func statusForKind(kind newsroom.ErrorKind) int {
	switch kind {
	case newsroom.KindValidation, newsroom.KindConflict:
		return http.StatusBadRequest
	case newsroom.KindNotFound:
		return http.StatusNotFound
	case newsroom.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a domain error to its status and machine-readable code.
// Anything that is not a domain error is logged and surfaced as a generic
// 500 without leaking internals.
func (h *Handler) writeError(c echo.Context, err error) error {
	if domainErr := newsroom.AsError(err); domainErr != nil {
		return c.JSON(statusForKind(domainErr.Kind), ErrorResponse{
			Error: domainErr.Message,
			Code:  domainErr.Code,
		})
	}

	h.log.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// writeUpdateErrorPathForm is writeError with the path-id update quirk:
// a missing category reports 400 instead of 404 on PUT /stories/:id.
// Kept for compatibility with existing clients.
func (h *Handler) writeUpdateErrorPathForm(c echo.Context, err error) error {
	if domainErr := newsroom.AsError(err); domainErr != nil && domainErr.Code == newsroom.CodeCategoryNotFound {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: domainErr.Message,
			Code:  domainErr.Code,
		})
	}

	return h.writeError(c, err)
}

func (h *Handler) writeBindError(c echo.Context, err error) error {
	h.log.Error("bind failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request parameters"})
}
