package constants

import "errors"

// Errors
var (
	ErrInvalidResponse    = errors.New("invalid Notion response")
	ErrIncompleteResponse = errors.New("received incomplete page response")
)

var (
	ErrNoBaseURL         = errors.New("base url not set")
	ErrNoAPIKey          = errors.New("api key not set")
	ErrMissingDatabaseID = errors.New("missing database ID")
	ErrInvalidDatabaseID = errors.New("invalid database ID")
	ErrMissingQuery      = errors.New("no search query provided")
	ErrInvalidQuery      = errors.New("invalid search query")
	ErrMissingProfileURL = errors.New("missing LinkedIn profile URL")
)
