package linkedin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notionview/notionview/pkg/constants"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("linkedin-api8.p.rapidapi.com", "rapid-key")
	c.BaseURL = srv.URL
	return c
}

func TestGetProfile(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-profile-data-by-url", r.URL.Path)
		assert.Equal(t, "https://www.linkedin.com/in/someone/?a=1&b=2", r.URL.Query().Get("url"))
		assert.Equal(t, "rapid-key", r.Header.Get(constants.HeaderRapidAPIKey))
		assert.Equal(t, "linkedin-api8.p.rapidapi.com", r.Header.Get(constants.HeaderRapidAPIHost))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"firstName":"Some","lastName":"One","positions":[{"title":"Engineer"}]}`))
	})

	profile, err := c.GetProfile(context.Background(), "https://www.linkedin.com/in/someone/?a=1&b=2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Some","lastName":"One","positions":[{"title":"Engineer"}]}`, string(profile))
}

func TestGetProfile_statusError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"quota exceeded"}`))
	})

	_, err := c.GetProfile(context.Background(), "https://www.linkedin.com/in/someone")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "API error: 429 Too Many Requests", statusErr.Error())
	assert.Contains(t, statusErr.Body, "quota")
}

func TestGetProfile_invalidBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html></html>`))
	})

	_, err := c.GetProfile(context.Background(), "https://www.linkedin.com/in/someone")
	assert.ErrorIs(t, err, constants.ErrInvalidResponse)
}

func TestGetProfile_localChecks(t *testing.T) {
	c := New("", "")
	assert.Equal(t, constants.DefaultRapidAPIHost, c.Host)
	assert.False(t, c.Configured())

	_, err := c.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, constants.ErrMissingProfileURL)

	_, err = c.GetProfile(context.Background(), "https://www.linkedin.com/in/someone")
	assert.ErrorIs(t, err, constants.ErrNoAPIKey)
}
