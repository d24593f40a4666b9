package codec

import (
	"io"

	"github.com/goccy/go-json"
)

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}

type Marshaler interface {
	Marshal(v any) ([]byte, error)
	NewEncoder(w io.Writer) Encoder
}

type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
	NewDecoder(r io.Reader) Decoder
}

// JSON implements both Marshaler and Unmarshaler with goccy/go-json.
// The zero value is ready to use.
type JSON struct {
	// EscapeHTML controls whether <, > and & are escaped by encoders.
	EscapeHTML bool
}

func NewJSON() *JSON {
	return &JSON{}
}

func (c *JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *JSON) NewEncoder(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(c.EscapeHTML)
	return enc
}

func (c *JSON) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}

func (c *JSON) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}
