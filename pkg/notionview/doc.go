// Package notionview is the HTTP service: it reads Notion databases and LinkedIn profiles
// on behalf of a browser front end and answers with trimmed JSON.
//
// Every Notion endpoint follows the same steps. It resolves the database id from the
// request, the referring page or the configured default. It validates the id and any
// search text before any remote call. It then makes one call to Notion (search makes two)
// and reshapes the response. Notion errors are mapped to 400, 401, 403 or 404 where the
// code is recognised and to a generic 500 otherwise; the remote detail is only logged.
//
// See [App.Handler] for the routes and [Main] for configuration.
package notionview
