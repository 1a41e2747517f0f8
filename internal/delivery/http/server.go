// Package http wires the echo server, its middleware chain and the
// route table into a Delivery started by main.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"panel/config"
	"panel/internal/delivery"
	"panel/internal/delivery/http/middleware"
	"panel/internal/delivery/http/router"
	"panel/internal/delivery/http/validator"
	"panel/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// HTTPParams holds dependencies for the HTTP server, injected by Fx.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server with its middleware chain and routes.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = middleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORS())
	if params.Config.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
