package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/notionview/notionview/internal/codec"
	"github.com/notionview/notionview/pkg/constants"
)

// HTTPConnection sends JSON requests to the Notion REST API.
// It holds no per-request state and is safe for concurrent use.
type HTTPConnection struct {
	BaseURL     string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler

	apiKey     string
	version    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func New(p *Config) *HTTPConnection {
	con := HTTPConnection{
		BaseURL:     strings.TrimRight(p.BaseURL, "/"),
		Marshaler:   p.Marshaler,
		Unmarshaler: p.Unmarshaler,
		apiKey:      p.APIKey,
		version:     p.Version,
		httpClient:  p.HTTPClient,
		logger:      zerolog.Nop(),
	}

	if con.Marshaler == nil || con.Unmarshaler == nil {
		c := codec.NewJSON()
		con.Marshaler, con.Unmarshaler = c, c
	}
	if con.version == "" {
		con.version = constants.DefaultNotionVersion
	}
	if con.httpClient == nil {
		con.httpClient = &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		}
	}
	if p.Logger != nil {
		con.logger = p.Logger.With().Str("component", "notion").Logger()
	}

	return &con
}

func (h *HTTPConnection) SetTimeout(timeout time.Duration) *HTTPConnection {
	h.httpClient.Timeout = timeout
	return h
}

func (h *HTTPConnection) SetHTTPClient(client *http.Client) *HTTPConnection {
	h.httpClient = client
	return h
}

// Send issues method on path with body encoded as JSON (nil for no body) and decodes the
// response into res when res is non-nil. Non-2xx responses come back as *APIError.
func (h *HTTPConnection) Send(ctx context.Context, method, path string, body, res any) error {
	if h.BaseURL == "" {
		return constants.ErrNoBaseURL
	}
	if h.apiKey == "" {
		return constants.ErrNoAPIKey
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		encoded, err := h.Marshaler.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set(constants.HeaderNotionVersion, h.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	respData, err := h.MakeRequest(req)
	if err != nil {
		return err
	}

	if res == nil {
		return nil
	}
	if err := h.Unmarshaler.Unmarshal(respData, res); err != nil {
		return fmt.Errorf("%w: %w", constants.ErrInvalidResponse, err)
	}
	return nil
}

func (h *HTTPConnection) MakeRequest(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making HTTP request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("notion request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBytes, nil
	}

	return nil, parseAPIError(resp.StatusCode, respBytes)
}
