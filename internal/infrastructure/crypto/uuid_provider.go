package crypto

import (
	domain "accounts/backend/internal/domain/auth"

	"github.com/google/uuid"
)

// UuidProvider generates random UUIDv4 identifiers.
type UuidProvider struct {
	errorLogger domain.ErrorLogger
}

// NewUuidProvider constructs a provider.
func NewUuidProvider(errorLogger domain.ErrorLogger) *UuidProvider {
	return &UuidProvider{errorLogger: errorLogger}
}

var _ domain.IdGenerator = (*UuidProvider)(nil)

// GenerateID returns a fresh identifier.
func (p *UuidProvider) GenerateID() domain.Result[domain.Id] {
	id, err := uuid.NewRandom()
	if err != nil {
		providerError := domain.NewProviderError(domain.ProviderCrypto, domain.MethodGenerateID, "uuid", err)
		p.errorLogger.SendLogError(providerError.Error(), err)
		return domain.Fail[domain.Id](providerError)
	}
	return domain.Ok(domain.NewId(id.String()))
}
