package rest

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

const (
	sessionCookieName = "session_token"
	userContextKey    = "newsroom.user"
)

// sessionToken extracts the opaque bearer credential from the
// Authorization header, falling back to the session cookie.
func sessionToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// requireAuth resolves the request's session token into a user and stores
// it in the request context. Requests without a valid session are rejected
// with 401 before reaching the handler.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := h.uc.UserByToken(c.Request().Context(), sessionToken(c))
		if err != nil {
			return h.writeError(c, err)
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// currentUser returns the authenticated user set by requireAuth, or nil.
func currentUser(c echo.Context) *newsroom.User {
	user, _ := c.Get(userContextKey).(*newsroom.User)
	return user
}
