// Package notionview is a typed client for the parts of the Notion API this service proxies:
// retrieving a database's schema, querying a database's first page of records, and listing the
// databases the integration can see.
//
// Basic usage:
//
//	client := notionview.New(connection.NewConfig(os.Getenv("NOTION_API_KEY")))
//
//	schema, err := client.RetrieveDatabase(ctx, databaseID)
//	if err != nil {
//		return err
//	}
//
//	result, err := client.QueryDatabase(ctx, databaseID, &notionview.QueryParams{
//		Filter:   notionql.BuildSearchFilter(schema, "invoice"),
//		PageSize: 10,
//	})
//
// Errors returned by Notion surface as *connection.APIError; use connection.ErrorCode or
// errors.As to branch on the Notion error code.
//
// The HTTP service built on this client lives in pkg/notionview.
package notionview
