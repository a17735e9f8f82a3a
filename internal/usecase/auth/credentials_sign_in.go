package auth

import (
	"context"

	domain "accounts/backend/internal/domain/auth"
)

// CredentialsSignInInput carries a raw email/password pair.
type CredentialsSignInInput struct {
	Credentials Credentials
}

// CredentialsSignIn authenticates an email/password pair against the
// stored hash. Password format is validated before any repository call so
// a malformed password short-circuits without a round-trip.
type CredentialsSignIn struct {
	UseCase[CredentialsSignInInput, SignedInUser]
	users            domain.UserRepository
	passwordProvider domain.PasswordProvider
}

// NewCredentialsSignIn constructs the use case.
func NewCredentialsSignIn(
	logger domain.PerformanceLogger,
	users domain.UserRepository,
	passwordProvider domain.PasswordProvider,
) *CredentialsSignIn {
	uc := &CredentialsSignIn{users: users, passwordProvider: passwordProvider}
	uc.UseCase = newUseCase("CredentialsSignInUseCase", logger, uc.perform)
	return uc
}

func (uc *CredentialsSignIn) perform(ctx context.Context, input CredentialsSignInInput) domain.Result[SignedInUser] {
	resultPassword := domain.ValidatePassword(input.Credentials.Password)
	if resultPassword.IsFailure() {
		return domain.Fail[SignedInUser](resultPassword.Err())
	}
	password := resultPassword.Value()

	resultFind := uc.findUser(ctx, input.Credentials.Email)
	if resultFind.IsFailure() {
		return domain.Fail[SignedInUser](resultFind.Err())
	}
	user := resultFind.Value()

	resultCompare := uc.passwordProvider.Compare(password, user.Password)
	if resultCompare.IsFailure() {
		return domain.Fail[SignedInUser](resultCompare.Err())
	}
	if !resultCompare.Value().IsEqual {
		return domain.Fail[SignedInUser](domain.NewSignInError(domain.SignInMotivePasswordNotMatch))
	}

	return domain.Ok(SignedInUser{UserID: user.ID})
}

func (uc *CredentialsSignIn) findUser(ctx context.Context, rawEmail string) domain.Result[*domain.User] {
	resultEmail := domain.ValidateEmail(rawEmail)
	if resultEmail.IsFailure() {
		return domain.Fail[*domain.User](resultEmail.Err())
	}

	resultFind := uc.users.FindByEmail(ctx, resultEmail.Value())
	if resultFind.IsFailure() {
		return domain.Fail[*domain.User](resultFind.Err())
	}
	user := resultFind.Value().User
	if user == nil {
		return domain.Fail[*domain.User](domain.NewSignInError(domain.SignInMotiveEmailNotFound))
	}

	return domain.Ok(user)
}
