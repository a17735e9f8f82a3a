package token

import (
	"crypto/rand"
	"fmt"

	domain "accounts/backend/internal/domain/auth"
)

const tokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomTokenGenerator produces short opaque tokens from an unambiguous
// uppercase alphabet (no 0/O, 1/I).
type RandomTokenGenerator struct {
	errorLogger domain.ErrorLogger
}

// NewRandomTokenGenerator constructs a generator.
func NewRandomTokenGenerator(errorLogger domain.ErrorLogger) *RandomTokenGenerator {
	return &RandomTokenGenerator{errorLogger: errorLogger}
}

var _ domain.TokenGenerator = (*RandomTokenGenerator)(nil)

// Generate returns a token of the requested length.
func (g *RandomTokenGenerator) Generate(amountCharacters int) domain.Result[domain.GenerateTokenOutput] {
	if amountCharacters <= 0 {
		err := fmt.Errorf("amount of characters must be positive, got %d", amountCharacters)
		return domain.Fail[domain.GenerateTokenOutput](g.providerError(err))
	}

	buf := make([]byte, amountCharacters)
	if _, err := rand.Read(buf); err != nil {
		return domain.Fail[domain.GenerateTokenOutput](g.providerError(err))
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return domain.Ok(domain.GenerateTokenOutput{Token: string(buf)})
}

func (g *RandomTokenGenerator) providerError(err error) *domain.ProviderError {
	providerError := domain.NewProviderError(domain.ProviderToken, domain.MethodGenerate, "crypto/rand", err)
	g.errorLogger.SendLogError(providerError.Error(), err)
	return providerError
}
