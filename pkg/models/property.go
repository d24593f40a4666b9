package models

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
)

// PropertyType is the "type" discriminant of a Notion property.
type PropertyType string

const (
	PropertyTypeTitle       PropertyType = "title"
	PropertyTypeRichText    PropertyType = "rich_text"
	PropertyTypeNumber      PropertyType = "number"
	PropertyTypeSelect      PropertyType = "select"
	PropertyTypeMultiSelect PropertyType = "multi_select"
	PropertyTypeDate        PropertyType = "date"
	PropertyTypeCheckbox    PropertyType = "checkbox"
	PropertyTypeURL         PropertyType = "url"
	PropertyTypeEmail       PropertyType = "email"
	PropertyTypePhoneNumber PropertyType = "phone_number"
	PropertyTypeFormula     PropertyType = "formula"
	PropertyTypeRollup      PropertyType = "rollup"
)

// PropertyValue is one variant of the property sum type.
// The set of implementations is closed to this package.
type PropertyValue interface {
	Kind() PropertyType
	payload() any
}

type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateRange is the payload of a date property. Only Start is rendered.
type DateRange struct {
	Start    string  `json:"start"`
	End      *string `json:"end"`
	TimeZone *string `json:"time_zone"`
}

type TitleValue struct{ Spans []RichText }
type RichTextValue struct{ Spans []RichText }
type NumberValue struct{ Number *float64 }
type SelectValue struct{ Option *SelectOption }
type MultiSelectValue struct{ Options []SelectOption }
type DateValue struct{ Date *DateRange }
type CheckboxValue struct{ Checked bool }
type URLValue struct{ URL *string }
type EmailValue struct{ Email *string }
type PhoneNumberValue struct{ PhoneNumber *string }

// UnsupportedValue stands in for formula, rollup and any tag this package does not decode.
type UnsupportedValue struct{ Tag PropertyType }

func (TitleValue) Kind() PropertyType         { return PropertyTypeTitle }
func (RichTextValue) Kind() PropertyType      { return PropertyTypeRichText }
func (NumberValue) Kind() PropertyType        { return PropertyTypeNumber }
func (SelectValue) Kind() PropertyType        { return PropertyTypeSelect }
func (MultiSelectValue) Kind() PropertyType   { return PropertyTypeMultiSelect }
func (DateValue) Kind() PropertyType          { return PropertyTypeDate }
func (CheckboxValue) Kind() PropertyType      { return PropertyTypeCheckbox }
func (URLValue) Kind() PropertyType           { return PropertyTypeURL }
func (EmailValue) Kind() PropertyType         { return PropertyTypeEmail }
func (PhoneNumberValue) Kind() PropertyType   { return PropertyTypePhoneNumber }
func (v UnsupportedValue) Kind() PropertyType { return v.Tag }

func (v TitleValue) payload() any       { return nonNilSpans(v.Spans) }
func (v RichTextValue) payload() any    { return nonNilSpans(v.Spans) }
func (v NumberValue) payload() any      { return v.Number }
func (v SelectValue) payload() any      { return v.Option }
func (v MultiSelectValue) payload() any { return nonNilOptions(v.Options) }
func (v DateValue) payload() any        { return v.Date }
func (v CheckboxValue) payload() any    { return v.Checked }
func (v URLValue) payload() any         { return v.URL }
func (v EmailValue) payload() any       { return v.Email }
func (v PhoneNumberValue) payload() any { return v.PhoneNumber }
func (v UnsupportedValue) payload() any { return nil }

func nonNilSpans(s []RichText) []RichText {
	if s == nil {
		return []RichText{}
	}
	return s
}

func nonNilOptions(o []SelectOption) []SelectOption {
	if o == nil {
		return []SelectOption{}
	}
	return o
}

// Property is a tagged property value as found in a page's "properties" object.
type Property struct {
	ID    string
	Type  PropertyType
	Value PropertyValue

	raw json.RawMessage
}

// NewProperty wraps v in a Property whose Type matches the variant.
func NewProperty(v PropertyValue) *Property {
	return &Property{Type: v.Kind(), Value: v}
}

type valueDecoder func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error)

// valueDecoders maps each supported tag to the decoder for the payload stored under that tag.
// A null or missing payload reaches the decoder with dataType Null and an empty value.
var valueDecoders = map[PropertyType]valueDecoder{
	PropertyTypeTitle: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		spans, err := decodeSpans(value, dataType)
		return TitleValue{Spans: spans}, err
	},
	PropertyTypeRichText: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		spans, err := decodeSpans(value, dataType)
		return RichTextValue{Spans: spans}, err
	},
	PropertyTypeNumber: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		if dataType != jsonparser.Number {
			return NumberValue{}, nil
		}
		n, err := jsonparser.ParseFloat(value)
		if err != nil {
			return nil, err
		}
		return NumberValue{Number: &n}, nil
	},
	PropertyTypeSelect: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		if dataType != jsonparser.Object {
			return SelectValue{}, nil
		}
		var opt SelectOption
		if err := json.Unmarshal(value, &opt); err != nil {
			return nil, err
		}
		return SelectValue{Option: &opt}, nil
	},
	PropertyTypeMultiSelect: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		if dataType != jsonparser.Array {
			return MultiSelectValue{}, nil
		}
		var opts []SelectOption
		if err := json.Unmarshal(value, &opts); err != nil {
			return nil, err
		}
		return MultiSelectValue{Options: opts}, nil
	},
	PropertyTypeDate: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		if dataType != jsonparser.Object {
			return DateValue{}, nil
		}
		var d DateRange
		if err := json.Unmarshal(value, &d); err != nil {
			return nil, err
		}
		return DateValue{Date: &d}, nil
	},
	PropertyTypeCheckbox: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		if dataType != jsonparser.Boolean {
			return CheckboxValue{}, nil
		}
		b, err := jsonparser.ParseBoolean(value)
		return CheckboxValue{Checked: b}, err
	},
	PropertyTypeURL: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		s, err := decodeOptionalString(value, dataType)
		return URLValue{URL: s}, err
	},
	PropertyTypeEmail: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		s, err := decodeOptionalString(value, dataType)
		return EmailValue{Email: s}, err
	},
	PropertyTypePhoneNumber: func(value []byte, dataType jsonparser.ValueType) (PropertyValue, error) {
		s, err := decodeOptionalString(value, dataType)
		return PhoneNumberValue{PhoneNumber: s}, err
	},
}

func decodeSpans(value []byte, dataType jsonparser.ValueType) ([]RichText, error) {
	if dataType != jsonparser.Array {
		return nil, nil
	}
	var spans []RichText
	if err := json.Unmarshal(value, &spans); err != nil {
		return nil, err
	}
	return spans, nil
}

func decodeOptionalString(value []byte, dataType jsonparser.ValueType) (*string, error) {
	if dataType != jsonparser.String {
		return nil, nil
	}
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *Property) UnmarshalJSON(data []byte) error {
	typ, err := jsonparser.GetString(data, "type")
	if err != nil {
		return fmt.Errorf("property has no type: %w", err)
	}

	id, err := jsonparser.GetString(data, "id")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return fmt.Errorf("property %q has an unreadable id: %w", typ, err)
	}

	p.ID = id
	p.Type = PropertyType(typ)
	p.raw = append(json.RawMessage(nil), data...)

	decode, ok := valueDecoders[p.Type]
	if !ok {
		p.Value = UnsupportedValue{Tag: p.Type}
		return nil
	}

	value, dataType, _, err := jsonparser.Get(data, typ)
	if dataType == jsonparser.NotExist {
		value, dataType = nil, jsonparser.Null
	} else if err != nil {
		return fmt.Errorf("property %q: %w", typ, err)
	}

	v, err := decode(value, dataType)
	if err != nil {
		return fmt.Errorf("property %q: %w", typ, err)
	}
	p.Value = v

	return nil
}

func (p Property) MarshalJSON() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	if p.ID != "" {
		id, _ := json.Marshal(p.ID)
		buf.WriteString(`"id":`)
		buf.Write(id)
		buf.WriteByte(',')
	}
	typ, _ := json.Marshal(string(p.Type))
	buf.WriteString(`"type":`)
	buf.Write(typ)

	var payload any
	if p.Value != nil {
		payload = p.Value.payload()
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	buf.Write(typ)
	buf.WriteByte(':')
	buf.Write(body)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
