package models

import (
	"strconv"
	"strings"
)

const (
	checkedGlyph   = "✓"
	uncheckedGlyph = "✗"
)

// Format renders a property value as a single display string.
//
// Absent properties and absent payloads render as "", except checkbox which is always
// "✓" or "✗". Formula, rollup and unknown types render as "". A Property whose Type
// disagrees with its Value also renders as "".
func Format(p *Property) string {
	if p == nil || p.Value == nil || p.Value.Kind() != p.Type {
		return ""
	}

	switch v := p.Value.(type) {
	case TitleValue:
		return PlainText(v.Spans)
	case RichTextValue:
		return PlainText(v.Spans)
	case NumberValue:
		if v.Number == nil {
			return ""
		}
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	case SelectValue:
		if v.Option == nil {
			return ""
		}
		return v.Option.Name
	case MultiSelectValue:
		names := make([]string, 0, len(v.Options))
		for _, o := range v.Options {
			names = append(names, o.Name)
		}
		return strings.Join(names, ", ")
	case DateValue:
		if v.Date == nil {
			return ""
		}
		return v.Date.Start
	case CheckboxValue:
		if v.Checked {
			return checkedGlyph
		}
		return uncheckedGlyph
	case URLValue:
		return deref(v.URL)
	case EmailValue:
		return deref(v.Email)
	case PhoneNumberValue:
		return deref(v.PhoneNumber)
	default:
		return ""
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
