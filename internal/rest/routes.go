package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

// Handler exposes the newsroom manager as a JSON HTTP API.
type Handler struct {
	uc  newsroom.IManager
	log *slog.Logger
}

func NewHandler(uc newsroom.IManager, log *slog.Logger) *Handler {
	return &Handler{
		uc:  uc,
		log: log,
	}
}

// RegisterRoutes builds the echo instance with all routes registered.
// Write endpoints are gated by the session middleware.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(h.loggingMiddleware)

	e.GET("/health", h.Health)

	e.GET("/categories", h.Categories)
	e.POST("/categories", h.CreateCategory, h.requireAuth)
	e.DELETE("/categories", h.DeleteCategory, h.requireAuth)

	e.GET("/stories", h.Stories)
	e.POST("/stories", h.CreateStory, h.requireAuth)
	e.PUT("/stories", h.UpdateStoryByQuery, h.requireAuth)
	e.DELETE("/stories", h.DeleteStoryByQuery, h.requireAuth)

	e.GET("/stories/:id", h.StoryByID)
	e.PUT("/stories/:id", h.UpdateStoryByPath, h.requireAuth)
	e.DELETE("/stories/:id", h.DeleteStoryByPath, h.requireAuth)

	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	e.GET("/auth/me", h.Me, h.requireAuth)

	return e
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
