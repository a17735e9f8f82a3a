package auth

import (
	"context"
	"time"

	domain "accounts/backend/internal/domain/auth"
)

// Executor is the single entry point every use case exposes to its
// consumers. Implementations are stateless apart from injected
// collaborators and safe for concurrent use.
type Executor[P, R any] interface {
	Execute(ctx context.Context, params P) domain.Result[R]
}

// UseCase wraps an operation with elapsed-time observation. The wrapper
// never alters the result and never fails on its own account; the
// performance logger absorbs emission problems.
type UseCase[P, R any] struct {
	name    string
	logger  domain.PerformanceLogger
	perform func(ctx context.Context, params P) domain.Result[R]
}

func newUseCase[P, R any](
	name string,
	logger domain.PerformanceLogger,
	perform func(ctx context.Context, params P) domain.Result[R],
) UseCase[P, R] {
	return UseCase[P, R]{name: name, logger: logger, perform: perform}
}

// Execute runs the operation and forwards its duration to the logger.
func (u UseCase[P, R]) Execute(ctx context.Context, params P) domain.Result[R] {
	start := time.Now()
	result := u.perform(ctx, params)
	u.logger.SendLogTimeUseCase(u.name, time.Since(start))
	return result
}

// SignedInUser is the resolved identity a sign-in path produces before
// token issuance.
type SignedInUser struct {
	UserID domain.Id
}

// Credentials is a raw email/password pair as received from transport.
type Credentials struct {
	Email    string
	Password string
}
