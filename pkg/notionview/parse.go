package notionview

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/notionview/notionview/pkg/constants"
)

const maxPageSize = 100

// Parse builds the Config from command line arguments, the optional YAML file named by
// -config (or NOTIONVIEW_CONFIG), and the environment.
func Parse(args []string) (*Config, error) {
	flagSet := flag.NewFlagSet("notionview", flag.ContinueOnError)

	var (
		configPath = flagSet.String("config", "", "Path to a YAML config file")
		port       = flagSet.String("port", constants.DefaultServerPort, "Server port")
		logLevel   = flagSet.String("log-level", "info", "Log level: debug, info, warn, error")
		logFile    = flagSet.String("log-file", "", "Append logs to this file instead of stdout")
		pageSize   = flagSet.Int("page-size", constants.DefaultPageSize, "Records requested per database query")
	)

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if flagSet.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	config := &Config{
		NotionBaseURL: constants.DefaultNotionBaseURL,
		NotionVersion: constants.DefaultNotionVersion,
		RapidAPIHost:  constants.DefaultRapidAPIHost,
		ServerPort:    constants.DefaultServerPort,
		PageSize:      constants.DefaultPageSize,
		LogLevel:      "info",
	}

	path := *configPath
	if path == "" {
		path = os.Getenv("NOTIONVIEW_CONFIG")
	}
	if err := loadFile(path, config); err != nil {
		return nil, err
	}

	if err := loadEnv(config); err != nil {
		return nil, err
	}

	// Only flags given explicitly override the file and the environment.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			config.ServerPort = *port
		case "log-level":
			config.LogLevel = *logLevel
		case "log-file":
			config.LogFile = *logFile
		case "page-size":
			config.PageSize = *pageSize
		}
	})

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.NotionAPIKey == "" {
		return fmt.Errorf("%w: set NOTION_API_KEY", constants.ErrNoAPIKey)
	}
	if c.PageSize < 1 || c.PageSize > maxPageSize {
		return fmt.Errorf("page size must be between 1 and %d, got %d", maxPageSize, c.PageSize)
	}
	if c.ServerPort == "" {
		return errors.New("server port must not be empty")
	}
	return nil
}

func loadFile(path string, config *Config) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml)", ext)
	}
	return nil
}

func loadEnv(config *Config) error {
	config.NotionAPIKey = getEnv(config.NotionAPIKey, "NOTION_API_KEY")
	config.NotionDatabaseID = getEnv(config.NotionDatabaseID, "NOTION_DATABASE_ID")
	config.NotionBaseURL = getEnv(config.NotionBaseURL, "NOTION_BASE_URL")
	config.NotionVersion = getEnv(config.NotionVersion, "NOTION_VERSION")
	config.RapidAPIKey = getEnv(config.RapidAPIKey, "X_RAPIDAPI_KEY", "X-RapidAPI-Key")
	config.RapidAPIHost = getEnv(config.RapidAPIHost, "RAPIDAPI_HOST")
	config.ServerPort = getEnv(config.ServerPort, "PORT")
	config.LogLevel = getEnv(config.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("NOTION_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid NOTION_PAGE_SIZE %q: %w", v, err)
		}
		config.PageSize = n
	}
	return nil
}
