package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "accounts/backend/internal/domain/auth"
)

func TestSignUp(t *testing.T) {
	encrypted := domain.Ok(domain.EncryptOutput{
		PasswordEncrypted: domain.NewPassword("$2a$12$hash"),
	})

	t.Run("registers a new user with the email unverified", func(t *testing.T) {
		users := &fakeUserRepository{
			findResult: userFound(nil),
			saveResult: domain.Ok(domain.SaveUserOutput{UserID: domain.NewId("user-new")}),
		}
		passwords := &fakePasswordProvider{encryptResult: encrypted}
		uc := NewSignUp(&fakeLogger{}, passwords, users)

		result := uc.Execute(context.Background(), SignUpInput{
			Email:    "New@Example.com",
			Password: "12345678",
		})

		require.True(t, result.IsSuccess())
		assert.Equal(t, domain.NewId("user-new"), result.Value().UserID)
		require.Len(t, passwords.encryptCalls, 1)
		assert.Equal(t, "12345678", passwords.encryptCalls[0].Value())
		require.Len(t, users.saveCalls, 1)
		saved := users.saveCalls[0]
		assert.Equal(t, "new@example.com", saved.Email.Value())
		assert.Equal(t, "$2a$12$hash", saved.Password.Value())
		assert.False(t, saved.IsEmailValidated)
	})

	t.Run("malformed password skips hashing and repository calls", func(t *testing.T) {
		users := &fakeUserRepository{}
		passwords := &fakePasswordProvider{}
		uc := NewSignUp(&fakeLogger{}, passwords, users)

		result := uc.Execute(context.Background(), SignUpInput{
			Email:    "new@example.com",
			Password: "short",
		})

		require.True(t, result.IsFailure())
		var invalid *domain.InvalidPasswordError
		require.ErrorAs(t, result.Err(), &invalid)
		assert.Empty(t, passwords.encryptCalls)
		assert.Empty(t, users.findCalls)
		assert.Empty(t, users.saveCalls)
	})

	t.Run("duplicate email fails with conflict and writes nothing", func(t *testing.T) {
		existing := &domain.User{
			ID:    domain.NewId("user-1"),
			Email: domain.NewEmail("taken@example.com"),
		}
		users := &fakeUserRepository{findResult: userFound(existing)}
		passwords := &fakePasswordProvider{encryptResult: encrypted}
		uc := NewSignUp(&fakeLogger{}, passwords, users)

		result := uc.Execute(context.Background(), SignUpInput{
			Email:    "taken@example.com",
			Password: "12345678",
		})

		require.True(t, result.IsFailure())
		var exists *domain.EmailAlreadyExistsError
		require.ErrorAs(t, result.Err(), &exists)
		assert.Equal(t, domain.StatusConflict, result.Err().Status())
		assert.Empty(t, users.saveCalls)
	})

	t.Run("hashing failure propagates before the email check", func(t *testing.T) {
		providerErr := domain.NewProviderError(domain.ProviderPassword, domain.MethodEncrypt, "bcrypt", nil)
		users := &fakeUserRepository{}
		passwords := &fakePasswordProvider{
			encryptResult: domain.Fail[domain.EncryptOutput](providerErr),
		}
		uc := NewSignUp(&fakeLogger{}, passwords, users)

		result := uc.Execute(context.Background(), SignUpInput{
			Email:    "new@example.com",
			Password: "12345678",
		})

		require.True(t, result.IsFailure())
		assert.Same(t, providerErr, result.Err())
		assert.Empty(t, users.findCalls)
	})

	t.Run("save failure propagates unchanged", func(t *testing.T) {
		repoErr := domain.NewRepositoryError(domain.RepositoryUsers, domain.MethodSave, "pgx", nil)
		users := &fakeUserRepository{
			findResult: userFound(nil),
			saveResult: domain.Fail[domain.SaveUserOutput](repoErr),
		}
		passwords := &fakePasswordProvider{encryptResult: encrypted}
		uc := NewSignUp(&fakeLogger{}, passwords, users)

		result := uc.Execute(context.Background(), SignUpInput{
			Email:    "new@example.com",
			Password: "12345678",
		})

		require.True(t, result.IsFailure())
		assert.Same(t, repoErr, result.Err())
	})
}
