package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_encoderEscaping(t *testing.T) {
	payload := map[string]string{"url": "https://example.com/?a=1&b=<2>"}

	var buf bytes.Buffer
	require.NoError(t, NewJSON().NewEncoder(&buf).Encode(payload))
	assert.Equal(t, "{\"url\":\"https://example.com/?a=1&b=<2>\"}\n", buf.String())

	buf.Reset()
	escaping := &JSON{EscapeHTML: true}
	require.NoError(t, escaping.NewEncoder(&buf).Encode(payload))
	assert.Contains(t, buf.String(), `\u0026`)
	assert.NotContains(t, buf.String(), "<")
}

func TestJSON_decoder(t *testing.T) {
	var dst struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	err := NewJSON().NewDecoder(bytes.NewBufferString(`{"code":"unauthorized","message":"bad token"}`)).Decode(&dst)
	require.NoError(t, err)
	assert.Equal(t, "unauthorized", dst.Code)
	assert.Equal(t, "bad token", dst.Message)
}
