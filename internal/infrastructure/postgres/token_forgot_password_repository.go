package postgres

import (
	"context"
	"time"

	domain "accounts/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenForgotPasswordRepository persists issued reset tokens.
type TokenForgotPasswordRepository struct {
	pool        *pgxpool.Pool
	idGenerator domain.IdGenerator
	errorLogger domain.ErrorLogger
	nowFunc     func() time.Time
}

// NewTokenForgotPasswordRepository constructs a repository.
func NewTokenForgotPasswordRepository(pool *pgxpool.Pool, idGenerator domain.IdGenerator, errorLogger domain.ErrorLogger) *TokenForgotPasswordRepository {
	return &TokenForgotPasswordRepository{
		pool:        pool,
		idGenerator: idGenerator,
		errorLogger: errorLogger,
		nowFunc:     time.Now,
	}
}

var _ domain.TokenForgotPasswordRepository = (*TokenForgotPasswordRepository)(nil)

// Save inserts a reset token bound to its owning user.
func (r *TokenForgotPasswordRepository) Save(ctx context.Context, token domain.TokenForgotPassword) domain.Result[struct{}] {
	resultID := r.idGenerator.GenerateID()
	if resultID.IsFailure() {
		return domain.Fail[struct{}](resultID.Err())
	}

	const query = `
INSERT INTO tokens_forgot_password (id, value, expiration_date, user_id, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.pool.Exec(ctx, query,
		resultID.Value().Value(), token.Value, token.ExpirationDate, token.UserID.Value(), r.nowFunc().UTC())
	if err != nil {
		repositoryError := domain.NewRepositoryError(domain.RepositoryTokensForgotPassword, domain.MethodSave, "pgx", err)
		r.errorLogger.SendLogError(repositoryError.Error(), err)
		return domain.Fail[struct{}](repositoryError)
	}
	return domain.Ok(struct{}{})
}
