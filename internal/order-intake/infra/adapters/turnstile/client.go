// Package turnstile implements the TokenVerifier port against the
// Cloudflare Turnstile siteverify endpoint.
package turnstile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const siteverifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

const defaultTimeout = 5 * time.Second

type Client struct {
	httpClient *http.Client
	secret     string
	endpoint   string
}

// NewClient builds a verifier holding the server-side secret. The HTTP
// client carries a bounded timeout so a slow siteverify call fails the
// gate instead of hanging the request.
func NewClient(secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		secret:     secret,
		endpoint:   siteverifyURL,
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// Verify redeems the client token together with the secret. It returns
// false with a nil error when Turnstile rejects the token, and a non-nil
// error when the call itself fails; the pipeline treats both as rejection.
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("turnstile: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("turnstile: siteverify call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("turnstile: siteverify returned status %d", resp.StatusCode)
	}

	var out siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("turnstile: decode siteverify response: %w", err)
	}
	return out.Success, nil
}
