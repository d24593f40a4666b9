package connection

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// APIError is an error object returned by the Notion API:
//
//	{"object": "error", "status": 404, "code": "object_not_found", "message": "..."}
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("notion: %s (status %d): %s", e.Code, e.Status, e.Message)
}

// Is matches any *APIError when target carries no code, and otherwise compares codes.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// ErrorCode returns the Notion error code carried by err, or "" when err is not an APIError.
func ErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// parseAPIError reads an error envelope. Bodies that are not a Notion error object still
// produce an APIError carrying the HTTP status and the body text.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	object, err := jsonparser.GetString(body, "object")
	if err != nil || object != "error" {
		apiErr.Message = truncate(string(body), maxErrorBody)
		return apiErr
	}

	apiErr.Code, _ = jsonparser.GetString(body, "code")
	apiErr.Message, _ = jsonparser.GetString(body, "message")
	apiErr.RequestID, _ = jsonparser.GetString(body, "request_id")
	if s, err := jsonparser.GetInt(body, "status"); err == nil {
		apiErr.Status = int(s)
	}
	return apiErr
}

const maxErrorBody = 512

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
