package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	t.Parallel()

	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert admin_devices")
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrapped(pgCheckViolation)))

	assert.True(t, isNotNullConstraintViolation(wrapped(pgNotNullViolation)))
	assert.False(t, isNotNullConstraintViolation(errors.New("value is not null")))

	assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(nil))
}
