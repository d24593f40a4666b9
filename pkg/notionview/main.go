package notionview

import (
	"context"
	"fmt"

	"github.com/notionview/notionview/pkg/logger"
)

// Main parses args, builds the App and serves until ctx is cancelled.
// It can be called directly from tests without building the binary.
//
// # Command Line Usage
//
//	notionview -port 8080 -config notionview.yaml -log-level debug
//
// # Environment Variables
//
//	NOTION_API_KEY      - Notion integration token (required)
//	NOTION_DATABASE_ID  - database used when a request names none
//	NOTION_BASE_URL     - default https://api.notion.com
//	NOTION_VERSION      - default 2022-06-28
//	NOTION_PAGE_SIZE    - records per query, default 10
//	X_RAPIDAPI_KEY      - RapidAPI key for LinkedIn lookups (X-RapidAPI-Key is also read)
//	RAPIDAPI_HOST       - default linkedin-api8.p.rapidapi.com
//	PORT                - server port, default 8080
//	LOG_LEVEL           - default info
//	NOTIONVIEW_CONFIG   - YAML config file, same as -config
//
// Flags override the environment, which overrides the config file.
func Main(ctx context.Context, args []string) error {
	config, err := Parse(args)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	level, err := logger.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logData, err := logger.New().FromPath(config.LogFile).Level(level).Make()
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logData.Close()

	app := New(config, logData.Logger)
	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
