package googleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	domain "accounts/backend/internal/domain/auth"
)

// DefaultUserInfoURL is Google's OAuth2 userinfo endpoint.
const DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"

// Provider resolves the verified identity behind a Google access token
// via the userinfo endpoint.
type Provider struct {
	httpClient  domain.HttpClient
	userInfoURL string
	errorLogger domain.ErrorLogger
}

// NewProvider constructs a provider; an empty url falls back to
// DefaultUserInfoURL.
func NewProvider(httpClient domain.HttpClient, userInfoURL string, errorLogger domain.ErrorLogger) *Provider {
	if userInfoURL == "" {
		userInfoURL = DefaultUserInfoURL
	}
	return &Provider{
		httpClient:  httpClient,
		userInfoURL: userInfoURL,
		errorLogger: errorLogger,
	}
}

var _ domain.GoogleApi = (*Provider)(nil)

// LoadUser resolves the account the access token belongs to. Transport
// failures and bad statuses both surface as LoadUserGoogleApiError.
func (p *Provider) LoadUser(ctx context.Context, accessToken string) domain.Result[domain.LoadGoogleUserOutput] {
	result := p.httpClient.Get(ctx, p.userInfoURL, map[string]string{
		"alt":          "json",
		"access_token": accessToken,
	})
	if result.IsFailure() {
		return domain.Fail[domain.LoadGoogleUserOutput](p.apiError(result.Err()))
	}
	response := result.Value()
	if response.StatusCode != http.StatusOK {
		return domain.Fail[domain.LoadGoogleUserOutput](p.apiError(fmt.Errorf("unexpected status %d", response.StatusCode)))
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(response.Body, &payload); err != nil {
		return domain.Fail[domain.LoadGoogleUserOutput](p.apiError(err))
	}
	if payload.ID == "" || payload.Email == "" {
		return domain.Fail[domain.LoadGoogleUserOutput](p.apiError(fmt.Errorf("id or email missing in userinfo response")))
	}

	return domain.Ok(domain.LoadGoogleUserOutput{
		GoogleAccount: domain.VerifiedAccount{
			ID:    domain.NewId(payload.ID),
			Email: domain.NewEmail(payload.Email),
			Name:  payload.Name,
		},
	})
}

func (p *Provider) apiError(err error) *domain.LoadUserGoogleApiError {
	apiError := domain.NewLoadUserGoogleApiError(err)
	p.errorLogger.SendLogError(apiError.Error(), err)
	return apiError
}
