package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"whatsorder/config"
	"whatsorder/internal/delivery"
	apimiddleware "whatsorder/internal/delivery/api/middleware"
	"whatsorder/internal/delivery/api/router"
	"whatsorder/internal/delivery/api/validator"
	"whatsorder/internal/delivery/middleware"
	"whatsorder/internal/domain/lifecycle"
	"whatsorder/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const (
	uploadsPath = "/api/uploads"

	// Room for multipart boundaries and headers around the file itself.
	multipartOverhead = 64 << 10
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: panics are recovered first, then every later middleware
	// can log with the request id.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		e.Use(middleware.NewMetricsMiddleware(params.Metrics).Handle)
	}
	e.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowCredentials: len(cfg.HTTP.AllowOrigins) > 0,
	}))
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == uploadsPath },
		Limit:   cfg.HTTP.MaxRequestBodySize,
	}))
	if cfg.Storage != nil {
		limit := strconv.FormatInt(cfg.Storage.MaxUploadSize+multipartOverhead, 10)
		e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
			Skipper: func(c echo.Context) bool { return c.Path() != uploadsPath },
			Limit:   limit,
		}))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

