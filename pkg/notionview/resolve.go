package notionview

import (
	"net/http"
	"net/url"

	"github.com/notionview/notionview/pkg/constants"
)

// Resolver extracts a database id from a request. ok is false when the source has none.
type Resolver func(r *http.Request) (id string, ok bool)

// FromQueryParam reads the id from the request's own query string.
func FromQueryParam(name string) Resolver {
	return func(r *http.Request) (string, bool) {
		id := r.URL.Query().Get(name)
		return id, id != ""
	}
}

// FromReferer reads the id from the query string of the page that made the request.
func FromReferer(name string) Resolver {
	return func(r *http.Request) (string, bool) {
		referer := r.Referer()
		if referer == "" {
			return "", false
		}
		u, err := url.Parse(referer)
		if err != nil {
			return "", false
		}
		id := u.Query().Get(name)
		return id, id != ""
	}
}

// FromDefault always yields id, unless it is empty.
func FromDefault(id string) Resolver {
	return func(*http.Request) (string, bool) {
		return id, id != ""
	}
}

// ResolveDatabaseID tries resolvers in order and returns the first id found.
func ResolveDatabaseID(r *http.Request, resolvers ...Resolver) (string, error) {
	for _, resolve := range resolvers {
		if id, ok := resolve(r); ok {
			return id, nil
		}
	}
	return "", constants.ErrMissingDatabaseID
}

// withDefault is the resolver chain shared by the schema, records and table endpoints.
func withDefault(defaultID string) []Resolver {
	return []Resolver{FromQueryParam("id"), FromReferer("id"), FromDefault(defaultID)}
}

// withoutDefault is used by search, which must never fall back to the configured database.
func withoutDefault() []Resolver {
	return []Resolver{FromQueryParam("id"), FromReferer("id")}
}
