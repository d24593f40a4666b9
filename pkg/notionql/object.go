package notionql

import "bytes"

// ObjectFilter restricts a search to one object kind, "page" or "database".
type ObjectFilter struct {
	Value string
}

// Object returns a search filter on the object kind.
func Object(kind string) *ObjectFilter {
	return &ObjectFilter{Value: kind}
}

func (f *ObjectFilter) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeKV(&buf, "property", "object"); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeKV(&buf, "value", f.Value); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *ObjectFilter) String() string {
	return filterString(f)
}
