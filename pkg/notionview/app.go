package notionview

import (
	"context"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	notion "github.com/notionview/notionview"
	"github.com/notionview/notionview/pkg/connection"
	"github.com/notionview/notionview/pkg/linkedin"
	"github.com/notionview/notionview/pkg/models"
)

// Config holds application configuration.
// Fields are filled from defaults, then the YAML file, then the environment, then flags.
type Config struct {
	NotionAPIKey     string `yaml:"notion_api_key"`
	NotionDatabaseID string `yaml:"notion_database_id"`
	NotionBaseURL    string `yaml:"notion_base_url"`
	NotionVersion    string `yaml:"notion_version"`

	RapidAPIKey  string `yaml:"rapidapi_key"`
	RapidAPIHost string `yaml:"rapidapi_host"`

	ServerPort string `yaml:"port"`
	PageSize   int    `yaml:"page_size"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// NotionAPI is the subset of the Notion client the handlers call.
type NotionAPI interface {
	RetrieveDatabase(ctx context.Context, databaseID string) (*models.DatabaseSchema, error)
	QueryDatabase(ctx context.Context, databaseID string, params *notion.QueryParams) (*models.QueryResult, error)
	SearchDatabases(ctx context.Context, params *notion.SearchParams) (*models.DatabaseSearchResult, error)
}

// ProfileAPI fetches opaque LinkedIn profile JSON.
type ProfileAPI interface {
	Configured() bool
	GetProfile(ctx context.Context, profileURL string) (json.RawMessage, error)
}

var (
	_ NotionAPI  = (*notion.Client)(nil)
	_ ProfileAPI = (*linkedin.Client)(nil)
)

// App holds the application state. Handlers only read from it.
type App struct {
	notion   NotionAPI
	profiles ProfileAPI
	config   *Config
	logger   zerolog.Logger
}

// New creates an App talking to the real Notion and RapidAPI endpoints.
func New(config *Config, logger zerolog.Logger) *App {
	conf := connection.NewConfig(config.NotionAPIKey)
	if config.NotionBaseURL != "" {
		conf.BaseURL = config.NotionBaseURL
	}
	if config.NotionVersion != "" {
		conf.Version = config.NotionVersion
	}
	conf.Logger = &logger

	return NewWithClients(config, notion.New(conf), linkedin.New(config.RapidAPIHost, config.RapidAPIKey), logger)
}

// NewWithClients creates an App over the given clients.
func NewWithClients(config *Config, notionAPI NotionAPI, profiles ProfileAPI, logger zerolog.Logger) *App {
	return &App{
		notion:   notionAPI,
		profiles: profiles,
		config:   config,
		logger:   logger,
	}
}

// getEnv returns the first non-empty environment variable among keys, or defaultValue.
func getEnv(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return defaultValue
}
