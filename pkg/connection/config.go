package connection

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/notionview/notionview/internal/codec"
	"github.com/notionview/notionview/pkg/constants"
)

// Config describes how to reach the Notion API.
type Config struct {
	BaseURL     string
	APIKey      string
	Version     string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	HTTPClient  *http.Client
	Logger      *zerolog.Logger
}

// NewConfig creates a Config for the public Notion API authenticated with apiKey.
// It is not absolutely necessary to create a Config using this function,
// but it fills in the codec, API version and timeout that New otherwise has to default.
func NewConfig(apiKey string) *Config {
	c := codec.NewJSON()
	nop := zerolog.Nop()
	return &Config{
		BaseURL:     constants.DefaultNotionBaseURL,
		APIKey:      apiKey,
		Version:     constants.DefaultNotionVersion,
		Marshaler:   c,
		Unmarshaler: c,
		HTTPClient:  &http.Client{Timeout: constants.DefaultHTTPTimeout},
		Logger:      &nop,
	}
}
