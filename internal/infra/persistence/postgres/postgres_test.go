package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitBetween(t *testing.T) {
	t.Parallel()

	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}
	cur := sql.DBStats{WaitCount: 14, WaitDuration: time.Second + 200*time.Millisecond}

	w := waitBetween(prev, cur)
	assert.Equal(t, int64(4), w.waits)
	assert.Equal(t, 200*time.Millisecond, w.total)
	assert.Equal(t, 50*time.Millisecond, w.average())

	assert.Zero(t, waitBetween(cur, cur).average())
}
