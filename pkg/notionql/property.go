package notionql

import (
	"bytes"

	"github.com/notionview/notionview/pkg/models"
)

const conditionContains = "contains"

// containsTypes are the property types whose filter condition supports "contains".
var containsTypes = map[models.PropertyType]struct{}{
	models.PropertyTypeTitle:       {},
	models.PropertyTypeRichText:    {},
	models.PropertyTypeURL:         {},
	models.PropertyTypeEmail:       {},
	models.PropertyTypePhoneNumber: {},
}

// SupportsContains reports whether a property of type t can be filtered with "contains".
func SupportsContains(t models.PropertyType) bool {
	_, ok := containsTypes[t]
	return ok
}

// PropertyFilter is a single condition on one property:
//
//	{"property": <name>, <type>: {<condition>: <value>}}
type PropertyFilter struct {
	Property  string
	Type      models.PropertyType
	Condition string
	Value     any
}

// Contains matches records whose property text contains value.
func Contains(property string, typ models.PropertyType, value string) *PropertyFilter {
	return &PropertyFilter{
		Property:  property,
		Type:      typ,
		Condition: conditionContains,
		Value:     value,
	}
}

func (f *PropertyFilter) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeKV(&buf, "property", f.Property); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeKV(&buf, string(f.Type), map[string]any{f.Condition: f.Value}); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *PropertyFilter) String() string {
	return filterString(f)
}
