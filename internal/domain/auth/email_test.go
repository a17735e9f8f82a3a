package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Run("accepts a plain address", func(t *testing.T) {
		result := ValidateEmail("user@example.com")

		require.True(t, result.IsSuccess())
		assert.Equal(t, "user@example.com", result.Value().Value())
		assert.Equal(t, "example.com", result.Value().Domain())
	})

	t.Run("normalizes case and surrounding whitespace", func(t *testing.T) {
		result := ValidateEmail("User@Example.com ")

		require.True(t, result.IsSuccess())
		assert.Equal(t, "user@example.com", result.Value().Value())
	})

	t.Run("re-validating a validated value succeeds unchanged", func(t *testing.T) {
		first := ValidateEmail("User@Example.com ")
		require.True(t, first.IsSuccess())

		second := ValidateEmail(first.Value().Value())

		require.True(t, second.IsSuccess())
		assert.Equal(t, first.Value(), second.Value())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"not-an-email",
			"@example.com",
			"user@",
			"user@@example.com",
			"user@example",
			"user name@example.com",
			".user@example.com",
		} {
			result := ValidateEmail(raw)

			require.True(t, result.IsFailure(), "raw=%q", raw)
			var invalid *InvalidEmailError
			require.ErrorAs(t, result.Err(), &invalid)
			assert.Equal(t, raw, invalid.Email)
			assert.Equal(t, StatusInvalid, result.Err().Status())
		}
	})

	t.Run("rejects oversized parts", func(t *testing.T) {
		longLocal := strings.Repeat("a", 65) + "@example.com"
		assert.True(t, ValidateEmail(longLocal).IsFailure())

		longLabel := "user@" + strings.Repeat("a", 64) + ".com"
		assert.True(t, ValidateEmail(longLabel).IsFailure())

		atLimitLocal := strings.Repeat("a", 64) + "@example.com"
		assert.True(t, ValidateEmail(atLimitLocal).IsSuccess())
	})

	t.Run("failure message names the raw input", func(t *testing.T) {
		result := ValidateEmail("nope")

		require.True(t, result.IsFailure())
		assert.Equal(t, "This email is invalid: nope.", result.Err().Error())
	})
}
