package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	domain "accounts/backend/internal/domain/auth"
)

// Client performs outbound GETs against provider endpoints.
type Client struct {
	httpClient  *http.Client
	errorLogger domain.ErrorLogger
}

// New constructs a client with the given request timeout.
func New(timeout time.Duration, errorLogger domain.ErrorLogger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		errorLogger: errorLogger,
	}
}

var _ domain.HttpClient = (*Client)(nil)

// Get issues a GET with the given query parameters and returns the raw
// response. Non-2xx statuses are returned to the caller undisturbed;
// only transport-level failures become ProviderError.
func (c *Client) Get(ctx context.Context, rawURL string, params map[string]string) domain.Result[domain.HttpResponse] {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.Fail[domain.HttpResponse](c.providerError(err))
	}

	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Fail[domain.HttpResponse](c.providerError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Fail[domain.HttpResponse](c.providerError(err))
	}

	return domain.Ok(domain.HttpResponse{StatusCode: resp.StatusCode, Body: body})
}

func (c *Client) providerError(err error) *domain.ProviderError {
	providerError := domain.NewProviderError(domain.ProviderHTTPClient, domain.MethodGet, "net/http", err)
	c.errorLogger.SendLogError(providerError.Error(), err)
	return providerError
}
