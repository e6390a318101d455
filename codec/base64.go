package codec

import (
	"encoding/base64"
)

// -------------------------------------------------------

// Base64Codec encodes 3 bytes to 4 characters using the standard RFC 4648
// alphabet, padding the output with '=' to a multiple of four.
type Base64Codec struct {
}

func (b *Base64Codec) Name() string {
	return "base64"
}

func (b *Base64Codec) Description() string {
	return "Base64 encoding (RFC 4648)"
}

func (b *Base64Codec) Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

func (b *Base64Codec) Decode(encoded string) (string, error) {
	res, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", malformed(b.Name(), encoded, err)
	}
	return bytesToText(b.Name(), res)
}

func (b *Base64Codec) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129-",
	}
}
