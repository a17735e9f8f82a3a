package auth

import "context"

// FindByEmailOutput carries the user found for an email lookup. A nil User
// means no row matched; absence is not a failure at this level.
type FindByEmailOutput struct {
	User *User
}

// SaveUserInput is a password sign-up row: hash stored, email unverified.
type SaveUserInput struct {
	Email            Email
	Password         Password
	IsEmailValidated bool
}

// SaveWithFacebookAccountInput creates a user pre-linked to a Facebook
// identity. Social providers are trusted for email ownership, so callers
// set IsEmailValidated true.
type SaveWithFacebookAccountInput struct {
	Email             Email
	FacebookAccountID Id
	IsEmailValidated  bool
}

// SaveWithGoogleAccountInput creates a user pre-linked to a Google identity.
type SaveWithGoogleAccountInput struct {
	Email            Email
	GoogleAccountID  Id
	IsEmailValidated bool
}

// SaveUserOutput carries the identifier assigned to a created user.
type SaveUserOutput struct {
	UserID Id
}

// UpdateUserInput attaches social-account links to an existing user. Only
// non-nil accounts are written.
type UpdateUserInput struct {
	UserID          Id
	FacebookAccount *SocialAccount
	GoogleAccount   *SocialAccount
}

// UserRepository defines persistence operations over users. Every failure
// is a RepositoryError except id generation inside saves, which surfaces
// the IdGenerator's ProviderError.
type UserRepository interface {
	FindByEmail(ctx context.Context, email Email) Result[FindByEmailOutput]
	Save(ctx context.Context, input SaveUserInput) Result[SaveUserOutput]
	SaveWithFacebookAccount(ctx context.Context, input SaveWithFacebookAccountInput) Result[SaveUserOutput]
	SaveWithGoogleAccount(ctx context.Context, input SaveWithGoogleAccountInput) Result[SaveUserOutput]
	Update(ctx context.Context, input UpdateUserInput) Result[struct{}]
}

// TokenForgotPasswordRepository persists issued forgot-password tokens.
type TokenForgotPasswordRepository interface {
	Save(ctx context.Context, token TokenForgotPassword) Result[struct{}]
}
