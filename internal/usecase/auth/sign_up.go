package auth

import (
	"context"

	domain "accounts/backend/internal/domain/auth"
)

// SignUpInput carries the raw registration payload.
type SignUpInput struct {
	Email    string
	Password string
}

// SignUpOutput carries the identifier of the created user.
type SignUpOutput struct {
	UserID domain.Id
}

// SignUp registers a password-based user: validate and hash the password,
// validate the email and reject duplicates, persist with the email marked
// unverified. Token issuance is left to the caller invoking SignIn.
type SignUp struct {
	UseCase[SignUpInput, SignUpOutput]
	passwordProvider domain.PasswordProvider
	users            domain.UserRepository
}

// NewSignUp constructs the use case.
func NewSignUp(
	logger domain.PerformanceLogger,
	passwordProvider domain.PasswordProvider,
	users domain.UserRepository,
) *SignUp {
	uc := &SignUp{passwordProvider: passwordProvider, users: users}
	uc.UseCase = newUseCase("SignUpUseCase", logger, uc.perform)
	return uc
}

func (uc *SignUp) perform(ctx context.Context, input SignUpInput) domain.Result[SignUpOutput] {
	resultPassword := uc.validateAndEncryptPassword(input.Password)
	if resultPassword.IsFailure() {
		return domain.Fail[SignUpOutput](resultPassword.Err())
	}
	passwordEncrypted := resultPassword.Value()

	resultEmail := uc.validateNewEmail(ctx, input.Email)
	if resultEmail.IsFailure() {
		return domain.Fail[SignUpOutput](resultEmail.Err())
	}
	email := resultEmail.Value()

	resultSave := uc.users.Save(ctx, domain.SaveUserInput{
		Email:            email,
		Password:         passwordEncrypted,
		IsEmailValidated: false,
	})
	if resultSave.IsFailure() {
		return domain.Fail[SignUpOutput](resultSave.Err())
	}

	return domain.Ok(SignUpOutput{UserID: resultSave.Value().UserID})
}

// validateAndEncryptPassword hashes only after format validation passes.
func (uc *SignUp) validateAndEncryptPassword(raw string) domain.Result[domain.Password] {
	resultValidate := domain.ValidatePassword(raw)
	if resultValidate.IsFailure() {
		return domain.Fail[domain.Password](resultValidate.Err())
	}

	resultEncrypt := uc.passwordProvider.Encrypt(resultValidate.Value())
	if resultEncrypt.IsFailure() {
		return domain.Fail[domain.Password](resultEncrypt.Err())
	}

	return domain.Ok(resultEncrypt.Value().PasswordEncrypted)
}

// validateNewEmail checks format, then uniqueness. The existence check is
// a user-facing fast path; the storage unique constraint is what actually
// closes the concurrent-sign-up race.
func (uc *SignUp) validateNewEmail(ctx context.Context, raw string) domain.Result[domain.Email] {
	resultValidate := domain.ValidateEmail(raw)
	if resultValidate.IsFailure() {
		return domain.Fail[domain.Email](resultValidate.Err())
	}
	email := resultValidate.Value()

	resultFind := uc.users.FindByEmail(ctx, email)
	if resultFind.IsFailure() {
		return domain.Fail[domain.Email](resultFind.Err())
	}
	if resultFind.Value().User != nil {
		return domain.Fail[domain.Email](domain.NewEmailAlreadyExistsError(email))
	}

	return domain.Ok(email)
}
