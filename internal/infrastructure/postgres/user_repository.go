package postgres

import (
	"context"
	"errors"
	"time"

	domain "accounts/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository persists users in PostgreSQL. Driver errors are wrapped
// into RepositoryError at this boundary and logged; callers only ever see
// the typed result.
type UserRepository struct {
	pool        *pgxpool.Pool
	idGenerator domain.IdGenerator
	errorLogger domain.ErrorLogger
	nowFunc     func() time.Time
}

// NewUserRepository constructs a repository.
func NewUserRepository(pool *pgxpool.Pool, idGenerator domain.IdGenerator, errorLogger domain.ErrorLogger) *UserRepository {
	return &UserRepository{
		pool:        pool,
		idGenerator: idGenerator,
		errorLogger: errorLogger,
		nowFunc:     time.Now,
	}
}

var _ domain.UserRepository = (*UserRepository)(nil)

// FindByEmail fetches a user by email. An absent row is a nil-user
// success, not a failure.
func (r *UserRepository) FindByEmail(ctx context.Context, email domain.Email) domain.Result[domain.FindByEmailOutput] {
	const query = `
SELECT id, email, password, is_email_validated, facebook_account_id, google_account_id
FROM users WHERE email = $1
`
	row := r.pool.QueryRow(ctx, query, email.Value())
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Ok(domain.FindByEmailOutput{User: nil})
		}
		return domain.Fail[domain.FindByEmailOutput](r.repositoryError(domain.MethodFindByEmail, err))
	}
	return domain.Ok(domain.FindByEmailOutput{User: user})
}

// Save inserts a password sign-up row.
func (r *UserRepository) Save(ctx context.Context, input domain.SaveUserInput) domain.Result[domain.SaveUserOutput] {
	resultID := r.idGenerator.GenerateID()
	if resultID.IsFailure() {
		return domain.Fail[domain.SaveUserOutput](resultID.Err())
	}
	id := resultID.Value()

	const query = `
INSERT INTO users (id, email, password, is_email_validated, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
`
	now := r.nowFunc().UTC()
	_, err := r.pool.Exec(ctx, query, id.Value(), input.Email.Value(), input.Password.Value(), input.IsEmailValidated, now)
	if err != nil {
		return domain.Fail[domain.SaveUserOutput](r.repositoryError(domain.MethodSave, err))
	}
	return domain.Ok(domain.SaveUserOutput{UserID: id})
}

// SaveWithFacebookAccount inserts a user pre-linked to a Facebook
// identity. The password column gets the generated id as a placeholder;
// the account has no usable credentials until one is set.
func (r *UserRepository) SaveWithFacebookAccount(ctx context.Context, input domain.SaveWithFacebookAccountInput) domain.Result[domain.SaveUserOutput] {
	resultID := r.idGenerator.GenerateID()
	if resultID.IsFailure() {
		return domain.Fail[domain.SaveUserOutput](resultID.Err())
	}
	id := resultID.Value()

	const query = `
INSERT INTO users (id, email, password, is_email_validated, facebook_account_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
`
	now := r.nowFunc().UTC()
	_, err := r.pool.Exec(ctx, query,
		id.Value(), input.Email.Value(), id.Value(), input.IsEmailValidated, input.FacebookAccountID.Value(), now)
	if err != nil {
		return domain.Fail[domain.SaveUserOutput](r.repositoryError(domain.MethodSaveWithFacebookAccount, err))
	}
	return domain.Ok(domain.SaveUserOutput{UserID: id})
}

// SaveWithGoogleAccount inserts a user pre-linked to a Google identity.
func (r *UserRepository) SaveWithGoogleAccount(ctx context.Context, input domain.SaveWithGoogleAccountInput) domain.Result[domain.SaveUserOutput] {
	resultID := r.idGenerator.GenerateID()
	if resultID.IsFailure() {
		return domain.Fail[domain.SaveUserOutput](resultID.Err())
	}
	id := resultID.Value()

	const query = `
INSERT INTO users (id, email, password, is_email_validated, google_account_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
`
	now := r.nowFunc().UTC()
	_, err := r.pool.Exec(ctx, query,
		id.Value(), input.Email.Value(), id.Value(), input.IsEmailValidated, input.GoogleAccountID.Value(), now)
	if err != nil {
		return domain.Fail[domain.SaveUserOutput](r.repositoryError(domain.MethodSaveWithGoogleAccount, err))
	}
	return domain.Ok(domain.SaveUserOutput{UserID: id})
}

// Update attaches social-account links to an existing user. Absent
// accounts keep their stored value.
func (r *UserRepository) Update(ctx context.Context, input domain.UpdateUserInput) domain.Result[struct{}] {
	const query = `
UPDATE users
SET facebook_account_id = COALESCE($2, facebook_account_id),
    google_account_id = COALESCE($3, google_account_id),
    updated_at = $4
WHERE id = $1
`
	var facebookID, googleID *string
	if input.FacebookAccount != nil {
		value := input.FacebookAccount.ID.Value()
		facebookID = &value
	}
	if input.GoogleAccount != nil {
		value := input.GoogleAccount.ID.Value()
		googleID = &value
	}

	_, err := r.pool.Exec(ctx, query, input.UserID.Value(), facebookID, googleID, r.nowFunc().UTC())
	if err != nil {
		return domain.Fail[struct{}](r.repositoryError(domain.MethodUpdate, err))
	}
	return domain.Ok(struct{}{})
}

func (r *UserRepository) repositoryError(method string, err error) *domain.RepositoryError {
	repositoryError := domain.NewRepositoryError(domain.RepositoryUsers, method, "pgx", err)
	r.errorLogger.SendLogError(repositoryError.Error(), err)
	return repositoryError
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id, email, password                string
		isEmailValidated                   bool
		facebookAccountID, googleAccountID *string
	)
	if err := row.Scan(&id, &email, &password, &isEmailValidated, &facebookAccountID, &googleAccountID); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:               domain.NewId(id),
		Email:            domain.NewEmail(email),
		Password:         domain.NewPassword(password),
		IsEmailValidated: isEmailValidated,
	}
	if facebookAccountID != nil {
		user.FacebookAccount = &domain.SocialAccount{ID: domain.NewId(*facebookAccountID)}
	}
	if googleAccountID != nil {
		user.GoogleAccount = &domain.SocialAccount{ID: domain.NewId(*googleAccountID)}
	}
	return user, nil
}
