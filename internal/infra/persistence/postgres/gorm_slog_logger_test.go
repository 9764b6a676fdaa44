package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"vradmin/config"
	deliverycontext "vradmin/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func lines(buf *bytes.Buffer) []map[string]any {
	out := make([]map[string]any, 0)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err == nil {
			out = append(out, m)
		}
	}

	return out
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("query error is logged", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, errors.New("connection reset"))

		out := lines(buf)
		require.Len(t, out, 1)
		assert.Equal(t, "GORM query failed", out[0]["msg"])
		assert.Equal(t, "connection reset", out[0]["error"])
		assert.Equal(t, "gorm", out[0]["component"])
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)

		out := lines(buf)
		require.Len(t, out, 1)
		assert.Equal(t, "GORM slow query", out[0]["msg"])
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newTestGormLogger(true)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		out := lines(buf)
		require.Len(t, out, 1)
		assert.Equal(t, "SELECT 1", out[0]["sql"])
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newTestGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newTestGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil))
	ctx, _ := deliverycontext.Scope(context.Background(), reqLogger, "req-7")

	l.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))

	assert.Empty(t, base.String())
	out := lines(&reqBuf)
	require.Len(t, out, 1)
	assert.Equal(t, "req-7", out[0]["request_id"])
	assert.Equal(t, "gorm", out[0]["component"])
}
