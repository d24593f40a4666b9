package models

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"

	"github.com/notionview/notionview/pkg/constants"
)

// PropertySchema is a declared database column: a name and a type, no value.
type PropertySchema struct {
	ID   string       `json:"id,omitempty"`
	Name string       `json:"name"`
	Type PropertyType `json:"type"`
}

// DatabaseSchema is a Notion database object reduced to its title and declared properties.
type DatabaseSchema struct {
	ID         string
	Title      []RichText
	Properties []PropertySchema

	rawProperties json.RawMessage
}

// TitleText returns the database title, or constants.UntitledDatabase when it has none.
func (s *DatabaseSchema) TitleText() string {
	if t := PlainText(s.Title); t != "" {
		return t
	}
	return constants.UntitledDatabase
}

// RawProperties returns the properties object exactly as Notion sent it. For a schema built in
// code it is re-encoded from Properties.
func (s *DatabaseSchema) RawProperties() json.RawMessage {
	if s.rawProperties != nil {
		return s.rawProperties
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s.Properties {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, _ := json.Marshal(p.Name)
		typ, _ := json.Marshal(string(p.Type))
		buf.Write(name)
		buf.WriteString(`:{"name":`)
		buf.Write(name)
		buf.WriteString(`,"type":`)
		buf.Write(typ)
		buf.WriteString(`}`)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// UnmarshalJSON decodes a database object. A partial database (no "properties") is rejected
// with constants.ErrIncompleteResponse.
func (s *DatabaseSchema) UnmarshalJSON(data []byte) error {
	id, err := jsonparser.GetString(data, "id")
	if err != nil {
		return fmt.Errorf("%w: database has no id", constants.ErrIncompleteResponse)
	}

	props, dataType, _, err := jsonparser.Get(data, "properties")
	if dataType != jsonparser.Object || err != nil {
		return fmt.Errorf("%w: database %s", constants.ErrIncompleteResponse, id)
	}

	var declared []PropertySchema
	err = jsonparser.ObjectEach(props, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		typ, err := jsonparser.GetString(value, "type")
		if err != nil {
			return fmt.Errorf("property %q has no type: %w", name, err)
		}
		propID, _ := jsonparser.GetString(value, "id")
		declared = append(declared, PropertySchema{ID: propID, Name: name, Type: PropertyType(typ)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("database %s: %w", id, err)
	}

	var title []RichText
	if raw, dt, _, err := jsonparser.Get(data, "title"); err == nil && dt == jsonparser.Array {
		if err := json.Unmarshal(raw, &title); err != nil {
			return fmt.Errorf("database %s title: %w", id, err)
		}
	}

	s.ID = id
	s.Title = title
	s.Properties = declared
	s.rawProperties = append(json.RawMessage(nil), props...)
	return nil
}

func (s DatabaseSchema) MarshalJSON() ([]byte, error) {
	title, err := json.Marshal(s.TitleText())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"properties":`)
	buf.Write(s.RawProperties())
	buf.WriteString(`,"title":`)
	buf.Write(title)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DatabaseSummary is a database listed by search.
type DatabaseSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// QueryResult is the first page of a database query.
type QueryResult struct {
	Results    []Record `json:"results"`
	HasMore    bool     `json:"has_more"`
	NextCursor *string  `json:"next_cursor"`
}

// DatabaseSearchResult is the first page of a search restricted to database objects.
type DatabaseSearchResult struct {
	Results    []DatabaseSchema `json:"results"`
	HasMore    bool             `json:"has_more"`
	NextCursor *string          `json:"next_cursor"`
}

// Summaries returns id and title for every database in the result.
func (r *DatabaseSearchResult) Summaries() []DatabaseSummary {
	out := make([]DatabaseSummary, 0, len(r.Results))
	for i := range r.Results {
		out = append(out, DatabaseSummary{ID: r.Results[i].ID, Title: r.Results[i].TitleText()})
	}
	return out
}
