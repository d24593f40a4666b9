// Package fakenotion provides a fake Notion REST server for tests.
//
// It serves the database retrieve, database query and search endpoints from stub responses
// configured per route, records every request it receives, and counts calls so tests can
// assert that invalid input never reaches the remote API.
//
// Requests that match no stub get a Notion "object_not_found" error, and requests without
// the expected bearer token get "unauthorized", mirroring the real API.
package fakenotion

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/notionview/notionview/pkg/connection"
	"github.com/notionview/notionview/pkg/constants"
)

// Route templates served by the fake.
const (
	RouteRetrieveDatabase = "/v1/databases/{id}"
	RouteQueryDatabase    = "/v1/databases/{id}/query"
	RouteSearch           = "/v1/search"
)

// RequestMatcher defines criteria for matching incoming requests.
type RequestMatcher struct {
	// Method is the HTTP method to match
	Method string
	// Route is one of the Route* templates
	Route string
	// Matcher is an optional function over path variables and the raw request body.
	// If nil, only the method and route are used for matching.
	Matcher func(vars map[string]string, body []byte) bool
}

// StubResponse defines a pre-configured response for matching requests.
type StubResponse struct {
	Matcher RequestMatcher
	// Result is encoded as the 200 response body (mutually exclusive with Error).
	// A string or []byte is written verbatim.
	Result any
	// Error is written as a Notion error object with Error.Status as the HTTP status.
	Error *connection.APIError
}

// RecordedRequest is a request the fake received.
type RecordedRequest struct {
	Method string
	Route  string
	Vars   map[string]string
	Body   []byte
}

type Server struct {
	*httptest.Server

	// APIKey is the bearer token the fake accepts.
	APIKey string

	mu       sync.Mutex
	stubs    []StubResponse
	requests []RecordedRequest
}

// New starts a fake server accepting apiKey.
func New(apiKey string) *Server {
	s := &Server{APIKey: apiKey}

	router := mux.NewRouter()
	router.HandleFunc(RouteRetrieveDatabase, s.handle).Methods(http.MethodGet)
	router.HandleFunc(RouteQueryDatabase, s.handle).Methods(http.MethodPost)
	router.HandleFunc(RouteSearch, s.handle).Methods(http.MethodPost)

	s.Server = httptest.NewServer(router)
	return s
}

// AddStub registers a stub. Stubs are matched in registration order.
func (s *Server) AddStub(stub StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs = append(s.stubs, stub)
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// Calls returns how many requests were received for route.
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Route == route {
			n++
		}
	}
	return n
}

// TotalCalls returns how many requests were received on any route.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	route, _ := mux.CurrentRoute(r).GetPathTemplate()
	vars := mux.Vars(r)
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{Method: r.Method, Route: route, Vars: vars, Body: body})
	stub, found := s.findStub(r.Method, route, vars, body)
	s.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+s.APIKey {
		writeError(w, &connection.APIError{
			Status:  http.StatusUnauthorized,
			Code:    constants.CodeUnauthorized,
			Message: "API token is invalid.",
		})
		return
	}

	if !found {
		writeError(w, &connection.APIError{
			Status:  http.StatusNotFound,
			Code:    constants.CodeObjectNotFound,
			Message: "Could not find object with ID: " + vars["id"] + ".",
		})
		return
	}

	if stub.Error != nil {
		writeError(w, stub.Error)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	switch v := stub.Result.(type) {
	case string:
		_, _ = io.WriteString(w, v)
	case []byte:
		_, _ = w.Write(v)
	default:
		_ = json.NewEncoder(w).Encode(v)
	}
}

// findStub must be called with s.mu held.
func (s *Server) findStub(method, route string, vars map[string]string, body []byte) (StubResponse, bool) {
	for _, stub := range s.stubs {
		m := stub.Matcher
		if m.Method != method || m.Route != route {
			continue
		}
		if m.Matcher != nil && !m.Matcher(vars, body) {
			continue
		}
		return stub, true
	}
	return StubResponse{}, false
}

func writeError(w http.ResponseWriter, e *connection.APIError) {
	status := e.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"object":  "error",
		"status":  status,
		"code":    e.Code,
		"message": e.Message,
	})
}

// MatchID matches requests whose {id} path variable equals id.
func MatchID(id string) func(vars map[string]string, body []byte) bool {
	return func(vars map[string]string, _ []byte) bool {
		return vars["id"] == id
	}
}
