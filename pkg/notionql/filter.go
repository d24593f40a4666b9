package notionql

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Filter is a Notion filter object.
type Filter interface {
	json.Marshaler

	// String returns the filter's JSON encoding.
	String() string
}

func filterString(f Filter) string {
	b, err := f.MarshalJSON()
	if err != nil {
		return "<invalid filter: " + err.Error() + ">"
	}
	return string(b)
}

// writeKV writes `"key":<value>` using the JSON encoding of both.
func writeKV(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
