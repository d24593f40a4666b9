package models

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"

	"github.com/notionview/notionview/pkg/constants"
)

// NamedProperty pairs a property with the name it is declared under.
type NamedProperty struct {
	Name     string
	Property *Property
}

// Record is a database row (a Notion page) with its properties in declaration order.
type Record struct {
	ID         string
	Properties []NamedProperty
}

// Property returns the property declared under name, or nil.
func (r *Record) Property(name string) *Property {
	for _, np := range r.Properties {
		if np.Name == name {
			return np.Property
		}
	}
	return nil
}

// Title returns the text of the record's title property.
func (r *Record) Title() string {
	for _, np := range r.Properties {
		if np.Property != nil && np.Property.Type == PropertyTypeTitle {
			return Format(np.Property)
		}
	}
	return ""
}

// UnmarshalJSON decodes a page object. A partial page (one without "properties") is rejected
// with constants.ErrIncompleteResponse.
func (r *Record) UnmarshalJSON(data []byte) error {
	id, err := jsonparser.GetString(data, "id")
	if err != nil {
		return fmt.Errorf("%w: page has no id", constants.ErrIncompleteResponse)
	}

	props, dataType, _, err := jsonparser.Get(data, "properties")
	if dataType != jsonparser.Object || err != nil {
		return fmt.Errorf("%w: page %s", constants.ErrIncompleteResponse, id)
	}

	named, err := decodeNamedProperties(props)
	if err != nil {
		return fmt.Errorf("page %s: %w", id, err)
	}

	r.ID = id
	r.Properties = named
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	id, err := json.Marshal(r.ID)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`{"id":`)
	buf.Write(id)
	buf.WriteString(`,"properties":`)
	if err := writeNamedProperties(&buf, r.Properties); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeNamedProperties walks a properties object in document order.
func decodeNamedProperties(data []byte) ([]NamedProperty, error) {
	var named []NamedProperty
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		if dataType != jsonparser.Object {
			return fmt.Errorf("property %q is not an object", name)
		}
		p := new(Property)
		if err := p.UnmarshalJSON(value); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		named = append(named, NamedProperty{Name: name, Property: p})
		return nil
	})
	return named, err
}

func writeNamedProperties(buf *bytes.Buffer, props []NamedProperty) error {
	buf.WriteByte('{')
	for i, np := range props {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(np.Name)
		if err != nil {
			return err
		}
		buf.Write(name)
		buf.WriteByte(':')

		var body []byte
		if np.Property == nil {
			body = []byte("null")
		} else if body, err = np.Property.MarshalJSON(); err != nil {
			return err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return nil
}
