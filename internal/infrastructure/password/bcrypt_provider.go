package password

import (
	"errors"

	domain "accounts/backend/internal/domain/auth"

	"golang.org/x/crypto/bcrypt"
)

// BcryptProvider hashes and compares passwords with bcrypt.
type BcryptProvider struct {
	cost        int
	errorLogger domain.ErrorLogger
}

// NewBcryptProvider constructs a provider; a non-positive cost falls back
// to the bcrypt default.
func NewBcryptProvider(cost int, errorLogger domain.ErrorLogger) *BcryptProvider {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptProvider{cost: cost, errorLogger: errorLogger}
}

var _ domain.PasswordProvider = (*BcryptProvider)(nil)

// Encrypt hashes a validated password.
func (p *BcryptProvider) Encrypt(password domain.Password) domain.Result[domain.EncryptOutput] {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password.Value()), p.cost)
	if err != nil {
		return domain.Fail[domain.EncryptOutput](p.providerError(domain.MethodEncrypt, err))
	}
	return domain.Ok(domain.EncryptOutput{PasswordEncrypted: domain.NewPassword(string(hashed))})
}

// Compare checks a password against a stored hash. A mismatch is a
// successful comparison reporting IsEqual false, not a provider failure.
func (p *BcryptProvider) Compare(password, passwordEncrypted domain.Password) domain.Result[domain.CompareOutput] {
	err := bcrypt.CompareHashAndPassword([]byte(passwordEncrypted.Value()), []byte(password.Value()))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.Ok(domain.CompareOutput{IsEqual: false})
		}
		return domain.Fail[domain.CompareOutput](p.providerError(domain.MethodCompare, err))
	}
	return domain.Ok(domain.CompareOutput{IsEqual: true})
}

func (p *BcryptProvider) providerError(method string, err error) *domain.ProviderError {
	providerError := domain.NewProviderError(domain.ProviderPassword, method, "bcrypt", err)
	p.errorLogger.SendLogError(providerError.Error(), err)
	return providerError
}
