package notionview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	notion "github.com/notionview/notionview"
	"github.com/notionview/notionview/pkg/models"
)

const (
	testDatabaseID    = "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4"
	otherDatabaseID   = "0f0e0d0c-0b0a-0908-0706-050403020100"
	defaultDatabaseID = "ffffffffffffffffffffffffffffffff"

	databaseJSON = `{
	  "object": "database",
	  "id": "a1b2c3d4-e5f6-a1b2-c3d4-e5f6a1b2c3d4",
	  "title": [{"type": "text", "plain_text": "Reading list"}],
	  "properties": {
	    "Name": {"id": "title", "name": "Name", "type": "title", "title": {}},
	    "Author": {"id": "a", "name": "Author", "type": "rich_text", "rich_text": {}},
	    "Pages": {"id": "p", "name": "Pages", "type": "number", "number": {}}
	  }
	}`

	numbersOnlyDatabaseJSON = `{
	  "object": "database",
	  "id": "a1b2c3d4-e5f6-a1b2-c3d4-e5f6a1b2c3d4",
	  "title": [],
	  "properties": {
	    "Pages": {"id": "p", "name": "Pages", "type": "number", "number": {}}
	  }
	}`

	queryJSON = `{
	  "object": "list",
	  "results": [
	    {"object": "page", "id": "p1", "properties": {
	      "Name": {"id": "title", "type": "title", "title": [{"type": "text", "plain_text": "Dune"}]},
	      "Pages": {"id": "p", "type": "number", "number": 412},
	      "Score": {"id": "s", "type": "formula", "formula": {"type": "number", "number": 9}},
	      "Read": {"id": "r", "type": "checkbox", "checkbox": true}
	    }},
	    {"object": "page", "id": "p2", "properties": {
	      "Name": {"id": "title", "type": "title", "title": [{"type": "text", "plain_text": "Emma"}]},
	      "Pages": {"id": "p", "type": "number", "number": null},
	      "Score": {"id": "s", "type": "formula", "formula": {"type": "number", "number": 3}},
	      "Read": {"id": "r", "type": "checkbox", "checkbox": false}
	    }}
	  ],
	  "has_more": false,
	  "next_cursor": null
	}`

	databasesJSON = `{
	  "object": "list",
	  "results": [
	    {"object": "database", "id": "d1", "title": [{"plain_text": "Reading list"}], "properties": {}},
	    {"object": "database", "id": "d2", "title": [], "properties": {}}
	  ],
	  "has_more": false,
	  "next_cursor": null
	}`
)

// stubNotion counts calls so tests can assert that rejected input never reaches Notion.
type stubNotion struct {
	schema    *models.DatabaseSchema
	query     *models.QueryResult
	databases *models.DatabaseSearchResult
	err       error

	retrieveCalls int
	queryCalls    int
	searchCalls   int
	lastID        string
	lastQuery     *notion.QueryParams
}

func (s *stubNotion) RetrieveDatabase(_ context.Context, databaseID string) (*models.DatabaseSchema, error) {
	s.retrieveCalls++
	s.lastID = databaseID
	if s.err != nil {
		return nil, s.err
	}
	return s.schema, nil
}

func (s *stubNotion) QueryDatabase(_ context.Context, databaseID string, params *notion.QueryParams) (*models.QueryResult, error) {
	s.queryCalls++
	s.lastID = databaseID
	s.lastQuery = params
	if s.err != nil {
		return nil, s.err
	}
	return s.query, nil
}

func (s *stubNotion) SearchDatabases(_ context.Context, _ *notion.SearchParams) (*models.DatabaseSearchResult, error) {
	s.searchCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.databases, nil
}

func (s *stubNotion) totalCalls() int {
	return s.retrieveCalls + s.queryCalls + s.searchCalls
}

type stubProfiles struct {
	apiKey  string
	profile json.RawMessage
	err     error
	calls   int
}

func (s *stubProfiles) Configured() bool { return s.apiKey != "" }

func (s *stubProfiles) GetProfile(_ context.Context, _ string) (json.RawMessage, error) {
	s.calls++
	return s.profile, s.err
}

func decode[T any](t *testing.T, data string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	return &v
}

func newStubNotion(t *testing.T) *stubNotion {
	t.Helper()
	return &stubNotion{
		schema:    decode[models.DatabaseSchema](t, databaseJSON),
		query:     decode[models.QueryResult](t, queryJSON),
		databases: decode[models.DatabaseSearchResult](t, databasesJSON),
	}
}

func testConfig() *Config {
	return &Config{
		NotionAPIKey:     "secret_test",
		NotionDatabaseID: defaultDatabaseID,
		ServerPort:       "0",
		PageSize:         10,
	}
}

func newTestApp(t *testing.T, n NotionAPI, p ProfileAPI) *App {
	t.Helper()
	return NewWithClients(testConfig(), n, p, zerolog.Nop())
}

// get serves a GET through the full handler chain.
func get(app *App, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	return rec
}

func referer(id string) http.Header {
	return http.Header{"Referer": {"http://localhost:3000/notion/records?id=" + id}}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}
