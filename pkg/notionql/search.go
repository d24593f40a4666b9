package notionql

import "github.com/notionview/notionview/pkg/models"

// BuildSearchFilter returns an OR of "contains" conditions, one per text-bearing property
// declared in schema, in declaration order. The result is empty when schema declares no
// property that supports "contains". query is expected to be validated by the caller.
func BuildSearchFilter(schema *models.DatabaseSchema, query string) *CompoundFilter {
	filter := Or()
	if schema == nil {
		return filter
	}

	for _, p := range schema.Properties {
		if !SupportsContains(p.Type) {
			continue
		}
		filter.Add(Contains(p.Name, p.Type, query))
	}
	return filter
}
