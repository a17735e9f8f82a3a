package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("success carries the value and no failure", func(t *testing.T) {
		result := Ok("payload")

		assert.True(t, result.IsSuccess())
		assert.False(t, result.IsFailure())
		assert.Equal(t, "payload", result.Value())
		assert.Nil(t, result.Err())
	})

	t.Run("failure carries the error and a zero value", func(t *testing.T) {
		failure := NewInvalidEmailError("nope")
		result := Fail[string](failure)

		assert.True(t, result.IsFailure())
		assert.False(t, result.IsSuccess())
		assert.Equal(t, "", result.Value())
		require.NotNil(t, result.Err())
		assert.Same(t, failure, result.Err())
	})
}
