package auth

import (
	"context"
	"time"

	domain "accounts/backend/internal/domain/auth"
)

const (
	forgotPasswordTokenLength = 6
	forgotPasswordTokenTTL    = 2 * time.Hour
)

// SendForgotPasswordNotificationInput carries the raw email to reset.
type SendForgotPasswordNotificationInput struct {
	Email string
}

// SendForgotPasswordNotification issues a short reset token with a fixed
// two-hour validity window. Delivery of the notification itself is an
// external collaborator and not modeled here.
type SendForgotPasswordNotification struct {
	UseCase[SendForgotPasswordNotificationInput, struct{}]
	users          domain.UserRepository
	tokenGenerator domain.TokenGenerator
	tokens         domain.TokenForgotPasswordRepository
	nowFunc        func() time.Time
}

// NewSendForgotPasswordNotification constructs the use case.
func NewSendForgotPasswordNotification(
	logger domain.PerformanceLogger,
	users domain.UserRepository,
	tokenGenerator domain.TokenGenerator,
	tokens domain.TokenForgotPasswordRepository,
) *SendForgotPasswordNotification {
	uc := &SendForgotPasswordNotification{
		users:          users,
		tokenGenerator: tokenGenerator,
		tokens:         tokens,
		nowFunc:        time.Now,
	}
	uc.UseCase = newUseCase("SendForgotPasswordNotificationUseCase", logger, uc.perform)
	return uc
}

func (uc *SendForgotPasswordNotification) perform(ctx context.Context, input SendForgotPasswordNotificationInput) domain.Result[struct{}] {
	resultEmail := domain.ValidateEmail(input.Email)
	if resultEmail.IsFailure() {
		return domain.Fail[struct{}](resultEmail.Err())
	}
	email := resultEmail.Value()

	resultFind := uc.users.FindByEmail(ctx, email)
	if resultFind.IsFailure() {
		return domain.Fail[struct{}](resultFind.Err())
	}
	user := resultFind.Value().User
	// An unknown email reuses InvalidEmailError rather than a dedicated
	// not-found kind; preserved behavior.
	if user == nil {
		return domain.Fail[struct{}](domain.NewInvalidEmailError(email.Value()))
	}

	resultToken := uc.tokenGenerator.Generate(forgotPasswordTokenLength)
	if resultToken.IsFailure() {
		return domain.Fail[struct{}](resultToken.Err())
	}

	resultSave := uc.tokens.Save(ctx, domain.TokenForgotPassword{
		Value:          resultToken.Value().Token,
		ExpirationDate: uc.nowFunc().Add(forgotPasswordTokenTTL),
		UserID:         user.ID,
	})
	if resultSave.IsFailure() {
		return domain.Fail[struct{}](resultSave.Err())
	}

	return domain.Ok(struct{}{})
}
