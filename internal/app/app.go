package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/config"
	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/rest"
	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := newsroom.NewManager(database, cfg.SessionTTL())
	handler := rest.NewHandler(manager, logger)

	e := handler.RegisterRoutes()
	e.Any("/rpc", echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
