package auth

import (
	"context"

	domain "accounts/backend/internal/domain/auth"
)

// FacebookSignInInput carries the client-supplied Facebook access token.
type FacebookSignInInput struct {
	FacebookAccessToken string
}

// FacebookSignIn resolves the verified Facebook identity and either
// creates a pre-linked user, reuses an already-linked one (idempotent, no
// write), or links the account to an existing user found by email.
type FacebookSignIn struct {
	UseCase[FacebookSignInInput, SignedInUser]
	facebookApi domain.FacebookApi
	users       domain.UserRepository
}

// NewFacebookSignIn constructs the use case.
func NewFacebookSignIn(
	logger domain.PerformanceLogger,
	facebookApi domain.FacebookApi,
	users domain.UserRepository,
) *FacebookSignIn {
	uc := &FacebookSignIn{facebookApi: facebookApi, users: users}
	uc.UseCase = newUseCase("FacebookSignInUseCase", logger, uc.perform)
	return uc
}

func (uc *FacebookSignIn) perform(ctx context.Context, input FacebookSignInInput) domain.Result[SignedInUser] {
	resultLoad := uc.facebookApi.LoadUser(ctx, input.FacebookAccessToken)
	if resultLoad.IsFailure() {
		return domain.Fail[SignedInUser](resultLoad.Err())
	}
	account := resultLoad.Value().FacebookAccount

	resultFind := uc.users.FindByEmail(ctx, account.Email)
	if resultFind.IsFailure() {
		return domain.Fail[SignedInUser](resultFind.Err())
	}
	found := resultFind.Value().User

	if found == nil {
		resultSave := uc.users.SaveWithFacebookAccount(ctx, domain.SaveWithFacebookAccountInput{
			Email:             account.Email,
			FacebookAccountID: account.ID,
			IsEmailValidated:  true,
		})
		if resultSave.IsFailure() {
			return domain.Fail[SignedInUser](resultSave.Err())
		}
		return domain.Ok(SignedInUser{UserID: resultSave.Value().UserID})
	}

	if found.FacebookAccount != nil {
		return domain.Ok(SignedInUser{UserID: found.ID})
	}

	resultUpdate := uc.users.Update(ctx, domain.UpdateUserInput{
		UserID:          found.ID,
		FacebookAccount: &domain.SocialAccount{ID: account.ID},
	})
	if resultUpdate.IsFailure() {
		return domain.Fail[SignedInUser](resultUpdate.Err())
	}

	return domain.Ok(SignedInUser{UserID: found.ID})
}
