package models

import "strings"

// RichText is a single rich-text span. Only the fields this service renders are decoded.
type RichText struct {
	Type      string  `json:"type,omitempty"`
	PlainText string  `json:"plain_text"`
	Href      *string `json:"href,omitempty"`
}

// Text returns a plain text span.
func Text(s string) RichText {
	return RichText{Type: "text", PlainText: s}
}

// PlainText joins the plain text of every span with a single space.
func PlainText(spans []RichText) string {
	if len(spans) == 0 {
		return ""
	}

	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		parts = append(parts, span.PlainText)
	}
	return strings.Join(parts, " ")
}
