package clickhouse

import (
	"context"
	"testing"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/repository"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     entity.LogQuery
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			query:     entity.LogQuery{Size: 50},
			wantWhere: "",
			wantArgs:  []any{},
		},
		{
			name:      "level is lowercased",
			query:     entity.LogQuery{Level: "ERROR"},
			wantWhere: " WHERE level = ?",
			wantArgs:  []any{"error"},
		},
		{
			name:      "all filters",
			query:     entity.LogQuery{Level: "warn", Key: "vradmin", Query: "timeout"},
			wantWhere: " WHERE level = ? AND key = ? AND positionCaseInsensitiveUTF8(message, ?) > 0",
			wantArgs:  []any{"warn", "vradmin", "timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			where, args := buildFilter(tt.query)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDecodeMeta(t *testing.T) {
	t.Parallel()

	assert.Nil(t, decodeMeta(""))
	assert.Equal(t, map[string]any{"purchase_id": float64(3)}, decodeMeta(`{"purchase_id":3}`))
	assert.Equal(t, map[string]any{"raw": "plain text"}, decodeMeta("plain text"))
}

func TestDisabledRepository(t *testing.T) {
	t.Parallel()

	_, err := disabledRepository{}.Search(context.Background(), entity.LogQuery{})
	require.ErrorIs(t, err, repository.ErrLogStoreDisabled)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(errors.Wrap(&clickhouse.Exception{Code: 209}, "count logs")))
	assert.False(t, IsRetryable(&clickhouse.Exception{Code: 62}))
	assert.False(t, IsRetryable(errors.New("boom")))
}

func TestIdentifierPattern(t *testing.T) {
	t.Parallel()

	assert.True(t, identifierPattern.MatchString("app_logs"))
	assert.True(t, identifierPattern.MatchString("logs.app_logs"))
	assert.False(t, identifierPattern.MatchString("app_logs; DROP TABLE x"))
}

func TestCompressionMethod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, clickhouse.CompressionZSTD, compressionMethod("zstd"))
	assert.Equal(t, clickhouse.CompressionNone, compressionMethod(""))
}
