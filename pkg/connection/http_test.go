package connection

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/notionview/notionview/pkg/constants"
)

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		// Must be set to non-nil value or it panics
		Header: http.Header{"Content-Type": []string{"application/json"}},
	}
}

type HTTPTestSuite struct {
	suite.Suite
	name string
}

func TestHttpTestSuite(t *testing.T) {
	ts := new(HTTPTestSuite)
	ts.name = "HTTP Test Suite"

	suite.Run(t, ts)
}

func (s *HTTPTestSuite) newConnection(fn RoundTripFunc) *HTTPConnection {
	cfg := NewConfig("secret_test")
	cfg.BaseURL = "http://notion.test/"
	return New(cfg).SetHTTPClient(NewTestClient(fn))
}

func (s *HTTPTestSuite) TestSend_setsHeadersAndBody() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		s.Equal(http.MethodPost, req.Method)
		s.Equal("http://notion.test/v1/databases/abc/query", req.URL.String())
		s.Equal("Bearer secret_test", req.Header.Get("Authorization"))
		s.Equal(constants.DefaultNotionVersion, req.Header.Get(constants.HeaderNotionVersion))
		s.Equal("application/json", req.Header.Get("Content-Type"))

		body, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		s.JSONEq(`{"page_size":10}`, string(body))

		return jsonResponse(http.StatusOK, `{"object":"list","results":[]}`)
	})

	var res struct {
		Object string `json:"object"`
	}
	err := conn.Send(context.Background(), http.MethodPost, "/v1/databases/abc/query", map[string]int{"page_size": 10}, &res)
	s.Require().NoError(err)
	s.Equal("list", res.Object)
}

func (s *HTTPTestSuite) TestSend_getHasNoBody() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		s.Equal(http.MethodGet, req.Method)
		s.Empty(req.Header.Get("Content-Type"))
		return jsonResponse(http.StatusOK, `{}`)
	})

	s.Require().NoError(conn.Send(context.Background(), http.MethodGet, "/v1/databases/abc", nil, nil))
}

func (s *HTTPTestSuite) TestMakeRequest_notionError() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusNotFound,
			`{"object":"error","status":404,"code":"object_not_found","message":"Could not find database with ID: abc.","request_id":"r-1"}`)
	})

	err := conn.Send(context.Background(), http.MethodGet, "/v1/databases/abc", nil, nil)
	s.Require().Error(err, "should return error for status code 404")

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(404, apiErr.Status)
	s.Equal(constants.CodeObjectNotFound, apiErr.Code)
	s.Equal("r-1", apiErr.RequestID)
	s.Equal(constants.CodeObjectNotFound, ErrorCode(err))
	s.True(errors.Is(err, &APIError{Code: constants.CodeObjectNotFound}))
	s.False(errors.Is(err, &APIError{Code: constants.CodeUnauthorized}))
}

func (s *HTTPTestSuite) TestMakeRequest_nonJSONError() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusBadGateway, `<html>bad gateway</html>`)
	})

	err := conn.Send(context.Background(), http.MethodGet, "/v1/databases/abc", nil, nil)
	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusBadGateway, apiErr.Status)
	s.Empty(apiErr.Code)
	s.Equal("", ErrorCode(errors.New("plain")))
}

func (s *HTTPTestSuite) TestSend_invalidResponse() {
	conn := s.newConnection(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `not json`)
	})

	var res map[string]any
	err := conn.Send(context.Background(), http.MethodGet, "/v1/databases/abc", nil, &res)
	s.ErrorIs(err, constants.ErrInvalidResponse)
}

func (s *HTTPTestSuite) TestSend_requiresAPIKey() {
	cfg := NewConfig("")
	err := New(cfg).Send(context.Background(), http.MethodGet, "/v1/databases/abc", nil, nil)
	s.ErrorIs(err, constants.ErrNoAPIKey)

	cfg = NewConfig("k")
	cfg.BaseURL = ""
	err = New(cfg).Send(context.Background(), http.MethodGet, "/v1/databases/abc", nil, nil)
	s.ErrorIs(err, constants.ErrNoBaseURL)
}
