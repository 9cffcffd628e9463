package rpc

import (
	"fmt"
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/newsroom"
)

func New(logger *slog.Logger, manager newsroom.IManager) *zenrpc.Server {
	rpcService := NewNewsroomService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("newsroom", rpcService)
	rpcServer.Use(middleware.WithAPILogger(func(format string, v ...interface{}) {
		logger.Info(fmt.Sprintf(format, v...))
	}, "governance-news"))

	return rpcServer
}
