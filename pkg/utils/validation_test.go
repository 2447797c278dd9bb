package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Code   string `json:"code" validate:"required"`
		Hidden string `json:"-" validate:"required"`
		Limit  string `json:"limit,omitempty" validate:"required"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(payload{Code: "a", Hidden: "b", Limit: "c"}))
	})

	t.Run("messages name the json field", func(t *testing.T) {
		err := ValidateStruct(payload{Hidden: "b", Limit: "c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code is required")
	})

	t.Run("json tag options are stripped", func(t *testing.T) {
		err := ValidateStruct(payload{Code: "a", Hidden: "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit is required")
	})

	t.Run("untagged fields fall back to the Go name", func(t *testing.T) {
		err := ValidateStruct(payload{Code: "a", Limit: "c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Hidden is required")
	})
}
