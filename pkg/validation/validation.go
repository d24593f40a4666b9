// Package validation holds the shape checks applied to caller input before any remote call.
package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/notionview/notionview/pkg/constants"
)

// databaseIDPattern accepts 32 lowercase hex digits, contiguous or grouped 8-4-4-4-12.
// Uppercase hex is rejected even though Notion itself accepts it.
var databaseIDPattern = regexp.MustCompile(`^(?:[a-f0-9]{32}|[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})$`)

// IsValidDatabaseID reports whether id looks like a Notion database id.
func IsValidDatabaseID(id string) bool {
	return databaseIDPattern.MatchString(id)
}

// IsValidSearchQuery reports whether q holds between 1 and MaxSearchQueryLength characters.
func IsValidSearchQuery(q string) bool {
	n := utf8.RuneCountInString(q)
	return n > 0 && n <= constants.MaxSearchQueryLength
}
