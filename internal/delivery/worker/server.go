// Package worker holds the entry points of the notifier process.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"vradmin/config"
	"vradmin/internal/delivery"
	"vradmin/internal/delivery/middleware"
	"vradmin/internal/delivery/push"
	"vradmin/internal/domain/lifecycle"
	"vradmin/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const readHeaderTimeout = 5 * time.Second

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *push.Handler
	Metrics     *metrics.Registry `optional:"true"`
}

type workerServer struct {
	logger *slog.Logger
	http   *http.Server
}

// NewServer serves the notifier's health check, the event bus push endpoint
// that triggers derivation, and the metrics endpoint when enabled.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		logger: params.Logger.With(slog.String("component", "worker_server")),
		http: &http.Server{
			Addr:              net.JoinHostPort("", strconv.Itoa(params.Cfg.Worker.Port)),
			Handler:           newWorkerEcho(params),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newWorkerEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID(params.Logger))
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	if m := params.Cfg.Metrics; params.Metrics != nil && m != nil && m.Enabled {
		e.GET(m.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	return e
}

func (s *workerServer) Serve(context.Context) error {
	s.logger.Info("Starting worker HTTP server", slog.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "worker server")
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.Wrap(s.http.Shutdown(ctx), "shutdown worker server")
}
