package auth

import (
	"context"
	"time"
)

// EncryptOutput carries the hash produced for a validated password.
type EncryptOutput struct {
	PasswordEncrypted Password
}

// CompareOutput reports whether a password matches a stored hash.
type CompareOutput struct {
	IsEqual bool
}

// PasswordProvider abstracts password hashing and comparison.
type PasswordProvider interface {
	Encrypt(password Password) Result[EncryptOutput]
	Compare(password, passwordEncrypted Password) Result[CompareOutput]
}

// GenerateJwtOutput carries a signed access token.
type GenerateJwtOutput struct {
	JwtToken string
}

// VerifyJwtOutput carries the identity a verified token resolves to.
type VerifyJwtOutput struct {
	UserID Id
}

// JwtProvider abstracts signed-token issuance and verification.
type JwtProvider interface {
	GenerateJwt(userID Id) Result[GenerateJwtOutput]
	VerifyJwt(token string) Result[VerifyJwtOutput]
}

// GenerateTokenOutput carries a short opaque token.
type GenerateTokenOutput struct {
	Token string
}

// TokenGenerator abstracts random opaque-token generation.
type TokenGenerator interface {
	Generate(amountCharacters int) Result[GenerateTokenOutput]
}

// IdGenerator abstracts identifier generation.
type IdGenerator interface {
	GenerateID() Result[Id]
}

// VerifiedAccount is the identity a social provider vouches for.
type VerifiedAccount struct {
	ID    Id
	Email Email
	Name  string
}

// LoadFacebookUserOutput wraps the Facebook identity resolution payload.
type LoadFacebookUserOutput struct {
	FacebookAccount VerifiedAccount
}

// FacebookApi resolves the verified identity behind a Facebook access token.
type FacebookApi interface {
	LoadUser(ctx context.Context, accessToken string) Result[LoadFacebookUserOutput]
}

// LoadGoogleUserOutput wraps the Google identity resolution payload.
type LoadGoogleUserOutput struct {
	GoogleAccount VerifiedAccount
}

// GoogleApi resolves the verified identity behind a Google access token.
type GoogleApi interface {
	LoadUser(ctx context.Context, accessToken string) Result[LoadGoogleUserOutput]
}

// HttpResponse is the outcome of an outbound GET.
type HttpResponse struct {
	StatusCode int
	Body       []byte
}

// HttpClient abstracts outbound HTTP GETs against provider endpoints.
type HttpClient interface {
	Get(ctx context.Context, url string, params map[string]string) Result[HttpResponse]
}

// PerformanceLogger receives elapsed-time observations. Implementations
// must never fail the caller; emission problems are their own concern.
type PerformanceLogger interface {
	SendLogTimeUseCase(useCase string, elapsed time.Duration)
	SendLogTimeController(controller string, elapsed time.Duration)
}

// ErrorLogger records collaborator failures at adapter boundaries.
type ErrorLogger interface {
	SendLogError(message string, err error)
}
