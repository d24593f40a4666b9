package notionview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Handler returns the router with every endpoint and the logging middleware.
//
// # API Endpoints
//
//	GET /api/notion/schema?id=                  - database title and declared properties
//	GET /api/notion/records?id=                 - first page of records
//	GET /api/notion/databases/{id}/records      - first page of records of {id}
//	GET /api/notion/search?query=&id=           - records matching query
//	GET /api/notion/table?id=                   - records rendered as strings
//	GET /api/notion/databases                   - databases shared with the integration
//	GET /api/linkedin/profile?url=              - LinkedIn profile passthrough
//	GET /health, /api/health                    - liveness
//
// Where ?id is optional it falls back to the id in the Referer's query string, and then
// (except for search) to the configured database.
func (a *App) Handler() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", a.handleHealth).Methods("GET")

	api.HandleFunc("/notion/schema", a.handleSchema).Methods("GET")
	api.HandleFunc("/notion/records", a.handleRecords).Methods("GET")
	api.HandleFunc("/notion/databases", a.handleDatabases).Methods("GET")
	api.HandleFunc("/notion/databases/{id}/records", a.handleListRecords).Methods("GET")
	api.HandleFunc("/notion/search", a.handleSearch).Methods("GET")
	api.HandleFunc("/notion/table", a.handleTable).Methods("GET")

	api.HandleFunc("/linkedin/profile", a.handleProfile).Methods("GET")

	router.HandleFunc("/health", a.handleHealth).Methods("GET")
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})

	return chain(router, a.middlewares()...)
}

// Run serves Handler on the configured port until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests up to 5 seconds.
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%s", a.config.ServerPort)
	a.logger.Info().
		Str("addr", addr).
		Str("default_database", a.config.NotionDatabaseID).
		Int("page_size", a.config.PageSize).
		Msg("starting notionview server")

	server := &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
