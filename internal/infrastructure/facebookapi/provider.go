package facebookapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	domain "accounts/backend/internal/domain/auth"
)

// Credentials are the app's Facebook client id and secret.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Provider resolves the verified identity behind a Facebook access token
// using the Graph API three-step verification: fetch an app token, debug
// the client token against it, then load the user's fields.
type Provider struct {
	httpClient  domain.HttpClient
	baseURL     string
	credentials Credentials
	errorLogger domain.ErrorLogger
}

// NewProvider constructs a provider against the given Graph API base URL.
func NewProvider(httpClient domain.HttpClient, baseURL string, credentials Credentials, errorLogger domain.ErrorLogger) *Provider {
	return &Provider{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		errorLogger: errorLogger,
	}
}

var _ domain.FacebookApi = (*Provider)(nil)

// LoadUser resolves the account the access token belongs to.
func (p *Provider) LoadUser(ctx context.Context, accessToken string) domain.Result[domain.LoadFacebookUserOutput] {
	resultUserID := p.debugToken(ctx, accessToken)
	if resultUserID.IsFailure() {
		return domain.Fail[domain.LoadFacebookUserOutput](resultUserID.Err())
	}

	resultFields := p.userFields(ctx, resultUserID.Value(), accessToken)
	if resultFields.IsFailure() {
		return domain.Fail[domain.LoadFacebookUserOutput](resultFields.Err())
	}
	fields := resultFields.Value()

	return domain.Ok(domain.LoadFacebookUserOutput{
		FacebookAccount: domain.VerifiedAccount{
			ID:    domain.NewId(fields.ID),
			Email: domain.NewEmail(fields.Email),
			Name:  fields.Name,
		},
	})
}

// appToken fetches an application token with the client credentials grant.
func (p *Provider) appToken(ctx context.Context) domain.Result[string] {
	result := p.httpClient.Get(ctx, p.baseURL+"/oauth/access_token", map[string]string{
		"client_id":     p.credentials.ClientID,
		"client_secret": p.credentials.ClientSecret,
		"grant_type":    "client_credentials",
	})
	if result.IsFailure() {
		return domain.Fail[string](result.Err())
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := p.decode(result.Value(), &payload); err != nil {
		return domain.Fail[string](p.apiError(err))
	}
	if payload.AccessToken == "" {
		return domain.Fail[string](p.apiError(fmt.Errorf("app token missing in response")))
	}
	return domain.Ok(payload.AccessToken)
}

// debugToken verifies the client token against the app token and returns
// the user id it was issued for.
func (p *Provider) debugToken(ctx context.Context, clientToken string) domain.Result[string] {
	resultAppToken := p.appToken(ctx)
	if resultAppToken.IsFailure() {
		return domain.Fail[string](resultAppToken.Err())
	}

	result := p.httpClient.Get(ctx, p.baseURL+"/debug_token", map[string]string{
		"access_token": resultAppToken.Value(),
		"input_token":  clientToken,
	})
	if result.IsFailure() {
		return domain.Fail[string](result.Err())
	}

	var payload struct {
		Data struct {
			UserID string `json:"user_id"`
		} `json:"data"`
	}
	if err := p.decode(result.Value(), &payload); err != nil {
		return domain.Fail[string](p.apiError(err))
	}
	if payload.Data.UserID == "" {
		return domain.Fail[string](p.apiError(fmt.Errorf("user id missing in debug token response")))
	}
	return domain.Ok(payload.Data.UserID)
}

type userFields struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (p *Provider) userFields(ctx context.Context, userID, clientToken string) domain.Result[userFields] {
	result := p.httpClient.Get(ctx, p.baseURL+"/"+userID, map[string]string{
		"fields":       "id,name,email",
		"access_token": clientToken,
	})
	if result.IsFailure() {
		return domain.Fail[userFields](result.Err())
	}

	var fields userFields
	if err := p.decode(result.Value(), &fields); err != nil {
		return domain.Fail[userFields](p.apiError(err))
	}
	if fields.ID == "" || fields.Email == "" {
		return domain.Fail[userFields](p.apiError(fmt.Errorf("id or email missing in user fields response")))
	}
	return domain.Ok(fields)
}

func (p *Provider) decode(response domain.HttpResponse, target any) error {
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", response.StatusCode)
	}
	return json.Unmarshal(response.Body, target)
}

func (p *Provider) apiError(err error) *domain.LoadUserFacebookApiError {
	apiError := domain.NewLoadUserFacebookApiError(err)
	p.errorLogger.SendLogError(apiError.Error(), err)
	return apiError
}
