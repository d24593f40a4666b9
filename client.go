package notionview

import (
	"context"
	"net/http"
	"net/url"

	"github.com/notionview/notionview/pkg/connection"
	"github.com/notionview/notionview/pkg/models"
	"github.com/notionview/notionview/pkg/notionql"
)

// Client calls the Notion REST API over a connection.Connection.
type Client struct {
	con connection.Connection
}

// New creates a Client over an HTTP connection built from cfg.
func New(cfg *connection.Config) *Client {
	return FromConnection(connection.New(cfg))
}

// FromConnection creates a Client over an existing connection.
func FromConnection(con connection.Connection) *Client {
	return &Client{con: con}
}

// QueryParams is the body of a database query. Only the first page is ever requested.
type QueryParams struct {
	Filter   notionql.Filter `json:"filter,omitempty"`
	PageSize int             `json:"page_size,omitempty"`
}

// SearchParams is the body of a search request.
type SearchParams struct {
	Query    string          `json:"query,omitempty"`
	Filter   notionql.Filter `json:"filter,omitempty"`
	PageSize int             `json:"page_size,omitempty"`
}

// RetrieveDatabase fetches a database's title and declared properties.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*models.DatabaseSchema, error) {
	var schema models.DatabaseSchema
	if err := c.con.Send(ctx, http.MethodGet, "/v1/databases/"+url.PathEscape(databaseID), nil, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// QueryDatabase fetches the first page of records of a database. params may be nil.
// An empty compound filter is dropped rather than sent.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, params *QueryParams) (*models.QueryResult, error) {
	body := QueryParams{}
	if params != nil {
		body = *params
	}
	if f, ok := body.Filter.(*notionql.CompoundFilter); ok && f.IsEmpty() {
		body.Filter = nil
	}

	var res models.QueryResult
	if err := c.con.Send(ctx, http.MethodPost, "/v1/databases/"+url.PathEscape(databaseID)+"/query", &body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchDatabases lists the databases shared with the integration, first page only.
func (c *Client) SearchDatabases(ctx context.Context, params *SearchParams) (*models.DatabaseSearchResult, error) {
	body := SearchParams{}
	if params != nil {
		body = *params
	}
	body.Filter = notionql.Object("database")

	var res models.DatabaseSearchResult
	if err := c.con.Send(ctx, http.MethodPost, "/v1/search", &body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
