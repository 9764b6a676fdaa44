package context

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "abc-123", want: "abc-123"},
		{raw: "  padded  ", want: "padded"},
		{raw: ""},
		{raw: "   "},
		{raw: strings.Repeat("x", maxRequestIDLen+1)},
		{raw: "bad\nid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeRequestID(tt.raw), "%q", tt.raw)
	}
}

func TestScope(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, scoped := Scope(context.Background(), logger, "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLogger(ctx))

	ctx, _ = Scope(context.Background(), logger, "")
	assert.NotEmpty(t, GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	t.Parallel()

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
