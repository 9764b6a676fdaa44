package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vradmin/config"
	"vradmin/internal/delivery"
	apimiddleware "vradmin/internal/delivery/api/middleware"
	"vradmin/internal/delivery/api/router"
	"vradmin/internal/delivery/api/validator"
	"vradmin/internal/delivery/middleware"
	"vradmin/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// streamSuffix marks server-sent event routes, which must not be buffered
// by compression.
const streamSuffix = "/stream"

type apiServer struct {
	port        int
	idleTimeout time.Duration
	logger      *slog.Logger
	server      *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the dashboard API server. WriteTimeout should stay zero
// while the notification stream is served.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		port:        params.Cfg.HTTP.Port,
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger.With(slog.String("component", "api_server")),
		server:      e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Order matters: panics are recovered first, and the request id must
	// exist before anything logs.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID(logger))
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg.HTTP.AllowOrigins)))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
		Skipper: isStreamRequest,
	}))

	return e
}

// corsConfig opens the API to every origin unless origins are configured,
// in which case credentials are allowed for exactly those.
func corsConfig(origins []string) echomiddleware.CORSConfig {
	cfg := echomiddleware.DefaultCORSConfig
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.ExposeHeaders = append(cfg.ExposeHeaders, "X-Request-Id")

	return cfg
}

func isStreamRequest(c echo.Context) bool {
	return strings.HasSuffix(c.Request().URL.Path, streamSuffix)
}

// Serve starts the h2c server and blocks until it is shut down.
func (s *apiServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{IdleTimeout: s.idleTimeout}
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
