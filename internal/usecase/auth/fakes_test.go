package auth

import (
	"context"
	"time"

	domain "accounts/backend/internal/domain/auth"
)

type fakeLogger struct {
	useCases []string
}

func (f *fakeLogger) SendLogTimeUseCase(useCase string, _ time.Duration) {
	f.useCases = append(f.useCases, useCase)
}

func (f *fakeLogger) SendLogTimeController(string, time.Duration) {}

type fakeUserRepository struct {
	findResult         domain.Result[domain.FindByEmailOutput]
	saveResult         domain.Result[domain.SaveUserOutput]
	saveFacebookResult domain.Result[domain.SaveUserOutput]
	saveGoogleResult   domain.Result[domain.SaveUserOutput]
	updateResult       domain.Result[struct{}]

	findCalls         []domain.Email
	saveCalls         []domain.SaveUserInput
	saveFacebookCalls []domain.SaveWithFacebookAccountInput
	saveGoogleCalls   []domain.SaveWithGoogleAccountInput
	updateCalls       []domain.UpdateUserInput
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email domain.Email) domain.Result[domain.FindByEmailOutput] {
	f.findCalls = append(f.findCalls, email)
	return f.findResult
}

func (f *fakeUserRepository) Save(_ context.Context, input domain.SaveUserInput) domain.Result[domain.SaveUserOutput] {
	f.saveCalls = append(f.saveCalls, input)
	return f.saveResult
}

func (f *fakeUserRepository) SaveWithFacebookAccount(_ context.Context, input domain.SaveWithFacebookAccountInput) domain.Result[domain.SaveUserOutput] {
	f.saveFacebookCalls = append(f.saveFacebookCalls, input)
	return f.saveFacebookResult
}

func (f *fakeUserRepository) SaveWithGoogleAccount(_ context.Context, input domain.SaveWithGoogleAccountInput) domain.Result[domain.SaveUserOutput] {
	f.saveGoogleCalls = append(f.saveGoogleCalls, input)
	return f.saveGoogleResult
}

func (f *fakeUserRepository) Update(_ context.Context, input domain.UpdateUserInput) domain.Result[struct{}] {
	f.updateCalls = append(f.updateCalls, input)
	return f.updateResult
}

type fakePasswordProvider struct {
	encryptResult domain.Result[domain.EncryptOutput]
	compareResult domain.Result[domain.CompareOutput]

	encryptCalls []domain.Password
	compareCalls [][2]domain.Password
}

func (f *fakePasswordProvider) Encrypt(password domain.Password) domain.Result[domain.EncryptOutput] {
	f.encryptCalls = append(f.encryptCalls, password)
	return f.encryptResult
}

func (f *fakePasswordProvider) Compare(password, passwordEncrypted domain.Password) domain.Result[domain.CompareOutput] {
	f.compareCalls = append(f.compareCalls, [2]domain.Password{password, passwordEncrypted})
	return f.compareResult
}

type fakeJwtProvider struct {
	generateResult domain.Result[domain.GenerateJwtOutput]
	verifyResult   domain.Result[domain.VerifyJwtOutput]

	generateCalls []domain.Id
}

func (f *fakeJwtProvider) GenerateJwt(userID domain.Id) domain.Result[domain.GenerateJwtOutput] {
	f.generateCalls = append(f.generateCalls, userID)
	return f.generateResult
}

func (f *fakeJwtProvider) VerifyJwt(string) domain.Result[domain.VerifyJwtOutput] {
	return f.verifyResult
}

type fakeTokenGenerator struct {
	result domain.Result[domain.GenerateTokenOutput]
	calls  []int
}

func (f *fakeTokenGenerator) Generate(amountCharacters int) domain.Result[domain.GenerateTokenOutput] {
	f.calls = append(f.calls, amountCharacters)
	return f.result
}

type fakeTokenRepository struct {
	result domain.Result[struct{}]
	saved  []domain.TokenForgotPassword
}

func (f *fakeTokenRepository) Save(_ context.Context, token domain.TokenForgotPassword) domain.Result[struct{}] {
	f.saved = append(f.saved, token)
	return f.result
}

type fakeFacebookApi struct {
	result domain.Result[domain.LoadFacebookUserOutput]
	tokens []string
}

func (f *fakeFacebookApi) LoadUser(_ context.Context, accessToken string) domain.Result[domain.LoadFacebookUserOutput] {
	f.tokens = append(f.tokens, accessToken)
	return f.result
}

type fakeGoogleApi struct {
	result domain.Result[domain.LoadGoogleUserOutput]
	tokens []string
}

func (f *fakeGoogleApi) LoadUser(_ context.Context, accessToken string) domain.Result[domain.LoadGoogleUserOutput] {
	f.tokens = append(f.tokens, accessToken)
	return f.result
}

type fakeExecutor[P any] struct {
	result domain.Result[SignedInUser]
	calls  []P
}

func (f *fakeExecutor[P]) Execute(_ context.Context, params P) domain.Result[SignedInUser] {
	f.calls = append(f.calls, params)
	return f.result
}

func userFound(user *domain.User) domain.Result[domain.FindByEmailOutput] {
	return domain.Ok(domain.FindByEmailOutput{User: user})
}
