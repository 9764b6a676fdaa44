package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title    string `json:"title" validate:"required,max=5"`
	Priority string `json:"priority" validate:"omitempty,oneof=LOW HIGH"`
}

func TestValidate(t *testing.T) {
	t.Parallel()

	v := New()

	require.NoError(t, v.Validate(&sample{Title: "ok", Priority: "LOW"}))

	err := v.Validate(&sample{Priority: "MEDIUM"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "priority must be one of [LOW HIGH]")

	err = v.Validate(&sample{Title: "too long"})
	require.Error(t, err)
	assert.Equal(t, "title must be at most 5", err.Error())
}
