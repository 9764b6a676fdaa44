package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/repository"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
)

type logRepository struct {
	conn   driver.Conn
	table  string
	logger *slog.Logger
}

type disabledRepository struct{}

func (disabledRepository) Search(context.Context, entity.LogQuery) (*entity.LogPage, error) {
	return nil, repository.ErrLogStoreDisabled
}

// buildFilter renders the WHERE clause of a log query.
func buildFilter(q entity.LogQuery) (string, []any) {
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if q.Level != "" {
		clauses = append(clauses, "level = ?")
		args = append(args, strings.ToLower(q.Level))
	}
	if q.Key != "" {
		clauses = append(clauses, "key = ?")
		args = append(args, q.Key)
	}
	if q.Query != "" {
		clauses = append(clauses, "positionCaseInsensitiveUTF8(message, ?) > 0")
		args = append(args, q.Query)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *logRepository) Search(ctx context.Context, q entity.LogQuery) (*entity.LogPage, error) {
	where, args := buildFilter(q)

	page := &entity.LogPage{Items: make([]*entity.LogEntry, 0, q.Size)}

	err := retry.Do(
		func() error {
			if err := r.conn.QueryRow(ctx, fmt.Sprintf("SELECT count() FROM %s%s", r.table, where), args...).
				Scan(&page.Total); err != nil {
				return errors.Wrap(err, "count logs")
			}

			items, err := r.fetch(ctx, where, args, q)
			if err != nil {
				return err
			}
			page.Items = items

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
	)
	if err != nil {
		return nil, err
	}

	return page, nil
}

func (r *logRepository) fetch(ctx context.Context, where string, args []any, q entity.LogQuery) ([]*entity.LogEntry, error) {
	query := fmt.Sprintf(
		"SELECT timestamp, level, message, key, meta FROM %s%s ORDER BY timestamp DESC LIMIT ? OFFSET ?",
		r.table, where,
	)

	rows, err := r.conn.Query(ctx, query, append(append([]any{}, args...), q.Size, q.From)...)
	if err != nil {
		return nil, errors.Wrap(err, "query logs")
	}
	defer rows.Close()

	items := make([]*entity.LogEntry, 0, q.Size)
	for rows.Next() {
		var (
			entry = &entity.LogEntry{}
			meta  string
		)
		if err := rows.Scan(&entry.Timestamp, &entry.Level, &entry.Message, &entry.Key, &meta); err != nil {
			return nil, errors.Wrap(err, "scan log row")
		}
		entry.Meta = decodeMeta(meta)
		items = append(items, entry)
	}

	return items, errors.WithStack(rows.Err())
}

// decodeMeta parses the JSON meta column. Anything else is kept verbatim.
func decodeMeta(raw string) map[string]any {
	if raw == "" {
		return nil
	}

	var meta map[string]any
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return map[string]any{"raw": raw}
	}

	return meta
}

func (r *logRepository) ensureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		timestamp DateTime64(3),
		level LowCardinality(String),
		message String,
		key LowCardinality(String),
		meta String
	) ENGINE = MergeTree ORDER BY (key, timestamp)`, r.table)

	return errors.Wrap(r.conn.Exec(ctx, ddl), "create log table")
}
