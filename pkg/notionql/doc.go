// Package notionql builds filter objects for Notion's database query and search endpoints.
//
// Filters are plain values that encode themselves to the JSON Notion expects:
//
//	f := notionql.Or(
//		notionql.Contains("Name", models.PropertyTypeTitle, "foo"),
//		notionql.Contains("Notes", models.PropertyTypeRichText, "foo"),
//	)
//	f.String() // {"or":[{"property":"Name","title":{"contains":"foo"}},{"property":"Notes","rich_text":{"contains":"foo"}}]}
//
// BuildSearchFilter derives such a filter from a database schema and a free-text query.
package notionql
