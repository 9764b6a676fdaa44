// Package clickhouse reads application logs from a ClickHouse table.
package clickhouse

import (
	"context"
	"log/slog"
	"net"
	"regexp"
	"strconv"

	"vradmin/config"
	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/lifecycle"
	"vradmin/internal/domain/repository"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTable = "app_logs"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Params holds dependencies for the log repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLogRepository connects to the configured log store. Without one, a
// repository answering ErrLogStoreDisabled is returned.
func NewLogRepository(params Params) (repository.LogRepository, error) {
	cfg := params.Config.LogStore
	logger := params.Logger.With(slog.String("component", "logstore"))

	if !cfg.Enabled() {
		logger.Info("Log store not configured, log browsing disabled")

		return disabledRepository{}, nil
	}

	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	if !identifierPattern.MatchString(table) {
		return nil, errors.Errorf("invalid log table name %q", table)
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": cfg.MaxExecutionTime,
		},
		Compression: &clickhouse.Compression{
			Method: compressionMethod(cfg.CompressionMethod),
		},
		DialTimeout: cfg.DialTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open clickhouse")
	}

	repo := &logRepository{conn: conn, table: table, logger: logger}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := conn.Ping(pingCtx); err != nil {
				return errors.Wrap(err, "ping clickhouse")
			}
			if params.Config.Env.Env == constants.EnvDevelop {
				if err := repo.ensureTable(pingCtx); err != nil {
					return err
				}
			}
			logger.Info("Log store connected", slog.String("table", table))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(conn.Close())
		},
	})

	return repo, nil
}

func compressionMethod(method string) clickhouse.CompressionMethod {
	switch method {
	case "zstd":
		return clickhouse.CompressionZSTD
	case "lz4":
		return clickhouse.CompressionLZ4
	case "lz4hc":
		return clickhouse.CompressionLZ4HC
	case "gzip":
		return clickhouse.CompressionGZIP
	case "deflate":
		return clickhouse.CompressionDeflate
	case "br":
		return clickhouse.CompressionBrotli
	default:
		return clickhouse.CompressionNone
	}
}

// IsRetryable reports whether a ClickHouse error is worth repeating.
func IsRetryable(err error) bool {
	var exception *clickhouse.Exception
	if !errors.As(err, &exception) {
		return false
	}

	switch exception.Code {
	case 160, 209, 241, 319, 516, 1002:
		return true
	default:
		return false
	}
}

