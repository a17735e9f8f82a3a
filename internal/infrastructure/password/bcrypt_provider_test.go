package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "accounts/backend/internal/domain/auth"
	"golang.org/x/crypto/bcrypt"
)

type nopErrorLogger struct{}

func (nopErrorLogger) SendLogError(string, error) {}

func TestBcryptProvider(t *testing.T) {
	provider := NewBcryptProvider(bcrypt.MinCost, nopErrorLogger{})

	t.Run("encrypt then compare round-trips", func(t *testing.T) {
		password := domain.NewPassword("12345678")

		encrypted := provider.Encrypt(password)
		require.True(t, encrypted.IsSuccess())
		hash := encrypted.Value().PasswordEncrypted
		assert.NotEqual(t, password.Value(), hash.Value())

		compared := provider.Compare(password, hash)
		require.True(t, compared.IsSuccess())
		assert.True(t, compared.Value().IsEqual)
	})

	t.Run("a mismatch is a success reporting not equal", func(t *testing.T) {
		encrypted := provider.Encrypt(domain.NewPassword("12345678"))
		require.True(t, encrypted.IsSuccess())

		compared := provider.Compare(domain.NewPassword("87654321"), encrypted.Value().PasswordEncrypted)

		require.True(t, compared.IsSuccess())
		assert.False(t, compared.Value().IsEqual)
	})

	t.Run("a corrupt hash is a provider failure", func(t *testing.T) {
		compared := provider.Compare(domain.NewPassword("12345678"), domain.NewPassword("not-a-hash"))

		require.True(t, compared.IsFailure())
		assert.Equal(t, domain.StatusProviderError, compared.Err().Status())
	})
}
