package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "accounts/backend/internal/domain/auth"
)

type nopErrorLogger struct{}

func (nopErrorLogger) SendLogError(string, error) {}

func TestJwtProvider(t *testing.T) {
	provider := NewJwtProvider("test-secret", time.Hour, "accounts", nopErrorLogger{})

	t.Run("a generated token verifies back to the same user", func(t *testing.T) {
		userID := domain.NewId("user-1")

		generated := provider.GenerateJwt(userID)
		require.True(t, generated.IsSuccess())
		assert.NotEmpty(t, generated.Value().JwtToken)

		verified := provider.VerifyJwt(generated.Value().JwtToken)
		require.True(t, verified.IsSuccess())
		assert.Equal(t, userID, verified.Value().UserID)
	})

	t.Run("garbage tokens are rejected as unauthorized", func(t *testing.T) {
		result := provider.VerifyJwt("not.a.jwt")

		require.True(t, result.IsFailure())
		assert.Equal(t, domain.StatusUnauthorized, result.Err().Status())
	})

	t.Run("tokens signed with another secret are rejected", func(t *testing.T) {
		other := NewJwtProvider("other-secret", time.Hour, "accounts", nopErrorLogger{})
		generated := other.GenerateJwt(domain.NewId("user-1"))
		require.True(t, generated.IsSuccess())

		result := provider.VerifyJwt(generated.Value().JwtToken)

		require.True(t, result.IsFailure())
		assert.Equal(t, domain.StatusUnauthorized, result.Err().Status())
	})

	t.Run("expired tokens are rejected", func(t *testing.T) {
		shortLived := NewJwtProvider("test-secret", -time.Minute, "accounts", nopErrorLogger{})
		generated := shortLived.GenerateJwt(domain.NewId("user-1"))
		require.True(t, generated.IsSuccess())

		result := provider.VerifyJwt(generated.Value().JwtToken)

		require.True(t, result.IsFailure())
		assert.Equal(t, domain.StatusUnauthorized, result.Err().Status())
	})
}

func TestRandomTokenGenerator(t *testing.T) {
	generator := NewRandomTokenGenerator(nopErrorLogger{})

	t.Run("produces tokens of the requested length from the alphabet", func(t *testing.T) {
		result := generator.Generate(6)

		require.True(t, result.IsSuccess())
		token := result.Value().Token
		assert.Len(t, token, 6)
		for _, r := range token {
			assert.True(t, strings.ContainsRune(tokenAlphabet, r), "rune %q outside alphabet", r)
		}
	})

	t.Run("rejects non-positive lengths", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			result := generator.Generate(n)

			require.True(t, result.IsFailure(), "n=%d", n)
			assert.Equal(t, domain.StatusProviderError, result.Err().Status())
		}
	})
}
