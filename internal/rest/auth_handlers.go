package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

// Register handles POST /auth/register
// @Summary Register an admin user
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} rest.User
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBindError(c, err)
	}

	user, err := h.uc.Register(c.Request().Context(), newsroom.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewUser(*user))
}

// Login handles POST /auth/login
// @Summary Log in and obtain a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} rest.SessionResponse
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.writeBindError(c, err)
	}

	session, err := h.uc.Login(c.Request().Context(), newsroom.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      NewUser(session.User),
	})
}

// Logout handles POST /auth/logout
// @Summary Invalidate the current session
// @Tags auth
// @Produce json
// @Success 200 {object} rest.MessageResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// Me handles GET /auth/me
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} rest.User
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return h.writeError(c, newsroom.NewUnauthorizedError(newsroom.CodeUnauthorized, "Authentication required"))
	}

	return c.JSON(http.StatusOK, NewUser(*user))
}
