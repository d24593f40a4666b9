package notionql_test

import (
	"fmt"

	"github.com/notionview/notionview/pkg/models"
	"github.com/notionview/notionview/pkg/notionql"
)

// ExampleBuildSearchFilter shows the filter derived from a schema for a free-text query.
func ExampleBuildSearchFilter() {
	schema := &models.DatabaseSchema{
		Properties: []models.PropertySchema{
			{Name: "Name", Type: models.PropertyTypeTitle},
			{Name: "Notes", Type: models.PropertyTypeRichText},
			{Name: "Count", Type: models.PropertyTypeNumber},
		},
	}

	filter := notionql.BuildSearchFilter(schema, "foo")
	fmt.Println(filter.String())

	// Output:
	// {"or":[{"property":"Name","title":{"contains":"foo"}},{"property":"Notes","rich_text":{"contains":"foo"}}]}
}
