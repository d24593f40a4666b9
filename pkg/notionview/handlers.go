package notionview

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"

	notion "github.com/notionview/notionview"
	"github.com/notionview/notionview/pkg/connection"
	"github.com/notionview/notionview/pkg/constants"
	"github.com/notionview/notionview/pkg/linkedin"
	"github.com/notionview/notionview/pkg/models"
	"github.com/notionview/notionview/pkg/notionql"
	"github.com/notionview/notionview/pkg/validation"
)

type schemaResponse struct {
	Title      string          `json:"title"`
	Properties json.RawMessage `json:"properties"`
}

type recordsResponse struct {
	Records []models.Record `json:"records"`
	Title   string          `json:"title"`
}

type databasesResponse struct {
	Databases []models.DatabaseSummary `json:"databases"`
}

// handleSchema returns a database's title and its properties exactly as Notion declares them.
//
// HTTP Method: GET
// Endpoint: /api/notion/schema?id={databaseId}
//
// The id falls back to the referring page's ?id and then to the configured database.
func (a *App) handleSchema(w http.ResponseWriter, r *http.Request) {
	databaseID, ok := a.databaseID(w, r, withDefault(a.config.NotionDatabaseID)...)
	if !ok {
		return
	}

	schema, err := a.notion.RetrieveDatabase(r.Context(), databaseID)
	if err != nil {
		a.respondRemoteError(w, r, err, "Failed to fetch database schema")
		return
	}

	respondJSON(w, http.StatusOK, schemaResponse{
		Title:      schema.TitleText(),
		Properties: schema.RawProperties(),
	})
}

// handleListRecords returns the first page of records of the database named in the path.
//
// HTTP Method: GET
// Endpoint: /api/notion/databases/{id}/records
func (a *App) handleListRecords(w http.ResponseWriter, r *http.Request) {
	databaseID := mux.Vars(r)["id"]
	if !validation.IsValidDatabaseID(databaseID) {
		respondError(w, http.StatusBadRequest, "Invalid database ID")
		return
	}
	a.respondRecords(w, r, databaseID)
}

// handleRecords is handleListRecords with the id resolved like handleSchema.
func (a *App) handleRecords(w http.ResponseWriter, r *http.Request) {
	databaseID, ok := a.databaseID(w, r, withDefault(a.config.NotionDatabaseID)...)
	if !ok {
		return
	}
	a.respondRecords(w, r, databaseID)
}

func (a *App) respondRecords(w http.ResponseWriter, r *http.Request, databaseID string) {
	res, err := a.notion.QueryDatabase(r.Context(), databaseID, &notion.QueryParams{PageSize: a.config.PageSize})
	if err != nil {
		a.respondRemoteError(w, r, err, "Failed to fetch records")
		return
	}

	respondJSON(w, http.StatusOK, recordsResponse{
		Records: nonNil(res.Results),
		Title:   recordsTitle(res.Results),
	})
}

// handleSearch returns the records whose text-bearing properties contain the query.
//
// HTTP Method: GET
// Endpoint: /api/notion/search?query={text}&id={databaseId}
//
// The id comes from ?id or the referring page; there is no configured fallback. The
// database is retrieved first for its title and declared property types, then queried
// with an OR of "contains" predicates over every title, rich_text, url, email and
// phone_number property. A database without such properties yields no records.
func (a *App) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, "No search query provided")
		return
	}
	if !validation.IsValidSearchQuery(query) {
		respondError(w, http.StatusBadRequest, "Invalid search query")
		return
	}

	databaseID, ok := a.databaseID(w, r, withoutDefault()...)
	if !ok {
		return
	}

	ctx := r.Context()
	schema, err := a.notion.RetrieveDatabase(ctx, databaseID)
	if err != nil {
		a.respondRemoteError(w, r, err, "Failed to search records")
		return
	}

	filter := notionql.BuildSearchFilter(schema, query)
	if filter.IsEmpty() {
		hlog.FromRequest(r).Debug().Str("database_id", databaseID).Msg("no searchable properties")
		respondJSON(w, http.StatusOK, recordsResponse{Records: []models.Record{}, Title: schema.TitleText()})
		return
	}

	res, err := a.notion.QueryDatabase(ctx, databaseID, &notion.QueryParams{
		Filter:   filter,
		PageSize: a.config.PageSize,
	})
	if err != nil {
		a.respondRemoteError(w, r, err, "Failed to search records")
		return
	}

	respondJSON(w, http.StatusOK, recordsResponse{
		Records: nonNil(res.Results),
		Title:   schema.TitleText(),
	})
}

// handleTable returns records rendered to display strings, one column per property.
func (a *App) handleTable(w http.ResponseWriter, r *http.Request) {
	databaseID, ok := a.databaseID(w, r, withDefault(a.config.NotionDatabaseID)...)
	if !ok {
		return
	}

	res, err := a.notion.QueryDatabase(r.Context(), databaseID, &notion.QueryParams{PageSize: a.config.PageSize})
	if err != nil {
		a.respondRemoteError(w, r, err, "Failed to fetch records")
		return
	}

	respondJSON(w, http.StatusOK, models.NewTable(recordsTitle(res.Results), res.Results))
}

// handleDatabases lists the databases shared with the integration.
func (a *App) handleDatabases(w http.ResponseWriter, r *http.Request) {
	res, err := a.notion.SearchDatabases(r.Context(), &notion.SearchParams{PageSize: a.config.PageSize})
	if err != nil {
		a.respondRemoteError(w, r, err, "Failed to list databases")
		return
	}
	respondJSON(w, http.StatusOK, databasesResponse{Databases: res.Summaries()})
}

// handleProfile passes LinkedIn profile JSON through unchanged.
//
// HTTP Method: GET
// Endpoint: /api/linkedin/profile?url={profileUrl}
//
// A non-2xx answer from RapidAPI is returned with the same status.
func (a *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	profileURL := r.URL.Query().Get("url")
	if profileURL == "" {
		respondError(w, http.StatusBadRequest, "Missing LinkedIn profile URL")
		return
	}
	if a.profiles == nil || !a.profiles.Configured() {
		respondError(w, http.StatusInternalServerError, "API key not configured")
		return
	}

	profile, err := a.profiles.GetProfile(r.Context(), profileURL)
	if err != nil {
		var statusErr *linkedin.StatusError
		if errors.As(err, &statusErr) {
			hlog.FromRequest(r).Error().
				Int("status", statusErr.StatusCode).
				Str("body", statusErr.Body).
				Msg("linkedin profile request failed")
			respondError(w, statusErr.StatusCode, statusErr.Error())
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("linkedin profile request failed")
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(profile)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status": "healthy",
		"time":   time.Now().Unix(),
	}
	respondJSON(w, http.StatusOK, response)
}

// databaseID resolves and validates the database id, writing a 400 when either fails.
func (a *App) databaseID(w http.ResponseWriter, r *http.Request, resolvers ...Resolver) (string, bool) {
	databaseID, err := ResolveDatabaseID(r, resolvers...)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing database ID")
		return "", false
	}
	if !validation.IsValidDatabaseID(databaseID) {
		respondError(w, http.StatusBadRequest, "Invalid database ID")
		return "", false
	}
	return databaseID, true
}

// respondRemoteError logs the remote failure in full and answers with a mapped status.
// Unmapped failures get fallback as the message.
func (a *App) respondRemoteError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := statusForError(err)
	if message == "" {
		message = fallback
	}

	event := hlog.FromRequest(r).Error().Err(err).Int("status", status)
	var apiErr *connection.APIError
	if errors.As(err, &apiErr) {
		event = event.Str("notion_code", apiErr.Code).Str("notion_request_id", apiErr.RequestID)
	}
	event.Msg("notion request failed")

	respondError(w, status, message)
}

// statusForError maps Notion error codes to the status returned to callers.
// Anything unrecognised is a 500 with no message.
func statusForError(err error) (int, string) {
	switch connection.ErrorCode(err) {
	case constants.CodeObjectNotFound:
		return http.StatusNotFound, "Database not found"
	case constants.CodeUnauthorized:
		return http.StatusUnauthorized, "Unauthorized"
	case constants.CodeRestrictedResource:
		return http.StatusForbidden, "Access denied"
	case constants.CodeValidationError:
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, ""
	}
}

// recordsTitle is the first record's title text, or "Untitled".
func recordsTitle(records []models.Record) string {
	if len(records) > 0 {
		if t := records[0].Title(); t != "" {
			return t
		}
	}
	return constants.UntitledDatabase
}

func nonNil(records []models.Record) []models.Record {
	if records == nil {
		return []models.Record{}
	}
	return records
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		response = []byte(`{"error":"Failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// respondError writes {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
