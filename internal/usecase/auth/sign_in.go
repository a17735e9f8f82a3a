package auth

import (
	"context"

	domain "accounts/backend/internal/domain/auth"
)

// SignInInput selects exactly one authentication path. When several are
// populated the precedence is credentials, then Facebook, then Google,
// then the pre-resolved user (used internally right after sign-up).
type SignInInput struct {
	Credentials         *Credentials
	FacebookAccessToken *string
	GoogleAccessToken   *string
	UserID              *domain.Id
}

// SignInOutput carries the signed access token for the resolved identity.
type SignInOutput struct {
	AccessToken string
}

// SignIn dispatches to one of the three authentication paths and issues a
// JWT for whichever identity it resolves. Branch failures propagate
// unchanged; only token signing adds its own ProviderError.
type SignIn struct {
	UseCase[SignInInput, SignInOutput]
	jwtProvider       domain.JwtProvider
	facebookSignIn    Executor[FacebookSignInInput, SignedInUser]
	googleSignIn      Executor[GoogleSignInInput, SignedInUser]
	credentialsSignIn Executor[CredentialsSignInInput, SignedInUser]
}

// NewSignIn constructs the dispatcher over the three sign-in paths.
func NewSignIn(
	logger domain.PerformanceLogger,
	jwtProvider domain.JwtProvider,
	facebookSignIn Executor[FacebookSignInInput, SignedInUser],
	googleSignIn Executor[GoogleSignInInput, SignedInUser],
	credentialsSignIn Executor[CredentialsSignInInput, SignedInUser],
) *SignIn {
	uc := &SignIn{
		jwtProvider:       jwtProvider,
		facebookSignIn:    facebookSignIn,
		googleSignIn:      googleSignIn,
		credentialsSignIn: credentialsSignIn,
	}
	uc.UseCase = newUseCase("SignInUseCase", logger, uc.perform)
	return uc
}

func (uc *SignIn) perform(ctx context.Context, input SignInInput) domain.Result[SignInOutput] {
	if input.Credentials != nil {
		result := uc.credentialsSignIn.Execute(ctx, CredentialsSignInInput{Credentials: *input.Credentials})
		if result.IsFailure() {
			return domain.Fail[SignInOutput](result.Err())
		}
		return uc.generateToken(result.Value().UserID)
	}

	if input.FacebookAccessToken != nil {
		result := uc.facebookSignIn.Execute(ctx, FacebookSignInInput{FacebookAccessToken: *input.FacebookAccessToken})
		if result.IsFailure() {
			return domain.Fail[SignInOutput](result.Err())
		}
		return uc.generateToken(result.Value().UserID)
	}

	if input.GoogleAccessToken != nil {
		result := uc.googleSignIn.Execute(ctx, GoogleSignInInput{GoogleAccessToken: *input.GoogleAccessToken})
		if result.IsFailure() {
			return domain.Fail[SignInOutput](result.Err())
		}
		return uc.generateToken(result.Value().UserID)
	}

	if input.UserID == nil {
		return domain.Fail[SignInOutput](domain.NewSignInError(domain.SignInMotiveUserNotFound))
	}

	return uc.generateToken(*input.UserID)
}

func (uc *SignIn) generateToken(userID domain.Id) domain.Result[SignInOutput] {
	result := uc.jwtProvider.GenerateJwt(userID)
	if result.IsFailure() {
		return domain.Fail[SignInOutput](result.Err())
	}
	return domain.Ok(SignInOutput{AccessToken: result.Value().JwtToken})
}
