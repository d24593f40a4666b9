// Package linkedin fetches LinkedIn profile data through the RapidAPI "linkedin-api8" endpoint.
// The profile JSON is opaque to this service and is returned unmodified.
package linkedin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/notionview/notionview/pkg/constants"
)

// Client is a wrapper to more easily make HTTP calls to the RapidAPI profile endpoint.
type Client struct {
	// BaseURL defaults to https://<Host>
	BaseURL string
	// Host is sent as x-rapidapi-host
	Host   string
	APIKey string

	httpClient *http.Client
}

// StatusError is returned when RapidAPI answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// New creates a Client for host authenticated with apiKey.
func New(host, apiKey string) *Client {
	if host == "" {
		host = constants.DefaultRapidAPIHost
	}
	return &Client{
		BaseURL:    "https://" + host,
		Host:       host,
		APIKey:     apiKey,
		httpClient: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

func (c *Client) SetHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c != nil && c.APIKey != ""
}

// GetProfile returns the raw profile JSON for profileURL.
func (c *Client) GetProfile(ctx context.Context, profileURL string) (json.RawMessage, error) {
	if profileURL == "" {
		return nil, constants.ErrMissingProfileURL
	}
	if !c.Configured() {
		return nil, constants.ErrNoAPIKey
	}

	endpoint := strings.TrimRight(c.BaseURL, "/") + "/get-profile-data-by-url?url=" + url.QueryEscape(profileURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constants.HeaderRapidAPIKey, c.APIKey)
	req.Header.Set(constants.HeaderRapidAPIHost, c.Host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making HTTP request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: profile response is not JSON", constants.ErrInvalidResponse)
	}
	return json.RawMessage(body), nil
}
