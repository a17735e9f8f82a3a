package auth

import (
	"context"

	domain "accounts/backend/internal/domain/auth"
)

// GoogleSignInInput carries the client-supplied Google access token.
type GoogleSignInInput struct {
	GoogleAccessToken string
}

// GoogleSignIn mirrors FacebookSignIn for Google identities: first-touch
// creation, idempotent reuse, or email-based account linking.
type GoogleSignIn struct {
	UseCase[GoogleSignInInput, SignedInUser]
	googleApi domain.GoogleApi
	users     domain.UserRepository
}

// NewGoogleSignIn constructs the use case.
func NewGoogleSignIn(
	logger domain.PerformanceLogger,
	googleApi domain.GoogleApi,
	users domain.UserRepository,
) *GoogleSignIn {
	uc := &GoogleSignIn{googleApi: googleApi, users: users}
	uc.UseCase = newUseCase("GoogleSignInUseCase", logger, uc.perform)
	return uc
}

func (uc *GoogleSignIn) perform(ctx context.Context, input GoogleSignInInput) domain.Result[SignedInUser] {
	resultLoad := uc.googleApi.LoadUser(ctx, input.GoogleAccessToken)
	if resultLoad.IsFailure() {
		return domain.Fail[SignedInUser](resultLoad.Err())
	}
	account := resultLoad.Value().GoogleAccount

	resultFind := uc.users.FindByEmail(ctx, account.Email)
	if resultFind.IsFailure() {
		return domain.Fail[SignedInUser](resultFind.Err())
	}
	found := resultFind.Value().User

	if found == nil {
		resultSave := uc.users.SaveWithGoogleAccount(ctx, domain.SaveWithGoogleAccountInput{
			Email:            account.Email,
			GoogleAccountID:  account.ID,
			IsEmailValidated: true,
		})
		if resultSave.IsFailure() {
			return domain.Fail[SignedInUser](resultSave.Err())
		}
		return domain.Ok(SignedInUser{UserID: resultSave.Value().UserID})
	}

	if found.GoogleAccount != nil {
		return domain.Ok(SignedInUser{UserID: found.ID})
	}

	resultUpdate := uc.users.Update(ctx, domain.UpdateUserInput{
		UserID:        found.ID,
		GoogleAccount: &domain.SocialAccount{ID: account.ID},
	})
	if resultUpdate.IsFailure() {
		return domain.Fail[SignedInUser](resultUpdate.Err())
	}

	return domain.Ok(SignedInUser{UserID: found.ID})
}
