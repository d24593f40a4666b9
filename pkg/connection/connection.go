// Package connection is the transport to the Notion REST API: authentication and version
// headers, JSON request bodies, and decoding of Notion error objects into *APIError.
package connection

import (
	"context"
)

// Connection is what the typed client needs from a transport.
type Connection interface {
	Send(ctx context.Context, method, path string, body, res any) error
}

var _ Connection = (*HTTPConnection)(nil)
