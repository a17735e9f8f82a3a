package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "accounts/backend/internal/domain/auth"
)

func TestCredentialsSignIn(t *testing.T) {
	storedUser := &domain.User{
		ID:       domain.NewId("user-1"),
		Email:    domain.NewEmail("user@example.com"),
		Password: domain.NewPassword("$2a$12$hash"),
	}

	t.Run("signs in when the password matches", func(t *testing.T) {
		logger := &fakeLogger{}
		users := &fakeUserRepository{findResult: userFound(storedUser)}
		passwords := &fakePasswordProvider{
			compareResult: domain.Ok(domain.CompareOutput{IsEqual: true}),
		}
		uc := NewCredentialsSignIn(logger, users, passwords)

		result := uc.Execute(context.Background(), CredentialsSignInInput{
			Credentials: Credentials{Email: "User@Example.com ", Password: "12345678"},
		})

		require.True(t, result.IsSuccess())
		assert.Equal(t, storedUser.ID, result.Value().UserID)
		require.Len(t, users.findCalls, 1)
		assert.Equal(t, "user@example.com", users.findCalls[0].Value())
		require.Len(t, passwords.compareCalls, 1)
		assert.Equal(t, "12345678", passwords.compareCalls[0][0].Value())
		assert.Equal(t, storedUser.Password, passwords.compareCalls[0][1])
		assert.Equal(t, []string{"CredentialsSignInUseCase"}, logger.useCases)
	})

	t.Run("malformed password short-circuits before any repository call", func(t *testing.T) {
		users := &fakeUserRepository{}
		passwords := &fakePasswordProvider{}
		uc := NewCredentialsSignIn(&fakeLogger{}, users, passwords)

		result := uc.Execute(context.Background(), CredentialsSignInInput{
			Credentials: Credentials{Email: "user@example.com", Password: "short"},
		})

		require.True(t, result.IsFailure())
		var invalid *domain.InvalidPasswordError
		require.ErrorAs(t, result.Err(), &invalid)
		assert.Empty(t, users.findCalls)
		assert.Empty(t, passwords.compareCalls)
	})

	t.Run("malformed email short-circuits before any repository call", func(t *testing.T) {
		users := &fakeUserRepository{}
		uc := NewCredentialsSignIn(&fakeLogger{}, users, &fakePasswordProvider{})

		result := uc.Execute(context.Background(), CredentialsSignInInput{
			Credentials: Credentials{Email: "not-an-email", Password: "12345678"},
		})

		require.True(t, result.IsFailure())
		var invalid *domain.InvalidEmailError
		require.ErrorAs(t, result.Err(), &invalid)
		assert.Empty(t, users.findCalls)
	})

	t.Run("unknown email fails with email not found", func(t *testing.T) {
		users := &fakeUserRepository{findResult: userFound(nil)}
		passwords := &fakePasswordProvider{}
		uc := NewCredentialsSignIn(&fakeLogger{}, users, passwords)

		result := uc.Execute(context.Background(), CredentialsSignInInput{
			Credentials: Credentials{Email: "user@example.com", Password: "12345678"},
		})

		require.True(t, result.IsFailure())
		var signInErr *domain.SignInError
		require.ErrorAs(t, result.Err(), &signInErr)
		assert.Equal(t, domain.SignInMotiveEmailNotFound, signInErr.Motive)
		assert.Equal(t, domain.StatusNotFound, result.Err().Status())
		assert.Empty(t, passwords.compareCalls)
	})

	t.Run("mismatched password fails with password not match", func(t *testing.T) {
		users := &fakeUserRepository{findResult: userFound(storedUser)}
		passwords := &fakePasswordProvider{
			compareResult: domain.Ok(domain.CompareOutput{IsEqual: false}),
		}
		uc := NewCredentialsSignIn(&fakeLogger{}, users, passwords)

		result := uc.Execute(context.Background(), CredentialsSignInInput{
			Credentials: Credentials{Email: "user@example.com", Password: "wrong-pass"},
		})

		require.True(t, result.IsFailure())
		var signInErr *domain.SignInError
		require.ErrorAs(t, result.Err(), &signInErr)
		assert.Equal(t, domain.SignInMotivePasswordNotMatch, signInErr.Motive)
		assert.Equal(t, domain.StatusInvalid, result.Err().Status())
	})

	t.Run("repository failures propagate unchanged", func(t *testing.T) {
		repoErr := domain.NewRepositoryError(domain.RepositoryUsers, domain.MethodFindByEmail, "pgx", nil)
		users := &fakeUserRepository{
			findResult: domain.Fail[domain.FindByEmailOutput](repoErr),
		}
		uc := NewCredentialsSignIn(&fakeLogger{}, users, &fakePasswordProvider{})

		result := uc.Execute(context.Background(), CredentialsSignInInput{
			Credentials: Credentials{Email: "user@example.com", Password: "12345678"},
		})

		require.True(t, result.IsFailure())
		assert.Same(t, repoErr, result.Err())
	})
}
