package token

import (
	"errors"
	"time"

	domain "accounts/backend/internal/domain/auth"

	"github.com/golang-jwt/jwt/v5"
)

// JwtProvider issues and verifies HS256-signed access tokens carrying the
// user id as subject.
type JwtProvider struct {
	secret      []byte
	expiration  time.Duration
	issuer      string
	errorLogger domain.ErrorLogger
}

// NewJwtProvider constructs a provider with the given secret, expiration
// and issuer.
func NewJwtProvider(secret string, expiration time.Duration, issuer string, errorLogger domain.ErrorLogger) *JwtProvider {
	return &JwtProvider{
		secret:      []byte(secret),
		expiration:  expiration,
		issuer:      issuer,
		errorLogger: errorLogger,
	}
}

var _ domain.JwtProvider = (*JwtProvider)(nil)

// GenerateJwt creates a signed token for the user id.
func (p *JwtProvider) GenerateJwt(userID domain.Id) domain.Result[domain.GenerateJwtOutput] {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Value(),
		Issuer:    p.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.expiration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return domain.Fail[domain.GenerateJwtOutput](p.providerError(domain.MethodGenerateJwt, err))
	}
	return domain.Ok(domain.GenerateJwtOutput{JwtToken: signed})
}

// VerifyJwt parses and validates a token, returning the user id it
// resolves to.
func (p *JwtProvider) VerifyJwt(tokenString string) domain.Result[domain.VerifyJwtOutput] {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return domain.Fail[domain.VerifyJwtOutput](domain.NewInvalidTokenError(err))
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return domain.Fail[domain.VerifyJwtOutput](domain.NewInvalidTokenError(errors.New("invalid token claims")))
	}
	return domain.Ok(domain.VerifyJwtOutput{UserID: domain.NewId(claims.Subject)})
}

func (p *JwtProvider) providerError(method string, err error) *domain.ProviderError {
	providerError := domain.NewProviderError(domain.ProviderToken, method, "golang-jwt", err)
	p.errorLogger.SendLogError(providerError.Error(), err)
	return providerError
}
