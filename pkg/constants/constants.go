package constants

import "time"

const (
	DefaultNotionBaseURL = "https://api.notion.com"
	DefaultNotionVersion = "2022-06-28"
	DefaultRapidAPIHost  = "linkedin-api8.p.rapidapi.com"
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultPageSize      = 10
	DefaultServerPort    = "8080"

	// UntitledDatabase is shown when a database or record set has no title text.
	UntitledDatabase = "Untitled"

	MaxSearchQueryLength = 100
)

// Headers
const (
	HeaderNotionVersion = "Notion-Version"
	HeaderRapidAPIKey   = "x-rapidapi-key"
	HeaderRapidAPIHost  = "x-rapidapi-host"
	HeaderRequestID     = "X-Request-ID"
)

// Error codes returned by the Notion API in the "code" field of an error object.
const (
	CodeObjectNotFound      = "object_not_found"
	CodeUnauthorized        = "unauthorized"
	CodeRestrictedResource  = "restricted_resource"
	CodeValidationError     = "validation_error"
	CodeInvalidJSON         = "invalid_json"
	CodeRateLimited         = "rate_limited"
	CodeInternalServerError = "internal_server_error"
)
