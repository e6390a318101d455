package codec

import (
	"encoding/base32"
)

// -------------------------------------------------------

// Base32Codec encodes 5 bytes to 8 characters using the standard RFC 4648
// alphabet (A-Z, 2-7), padding the output with '=' to a multiple of eight.
type Base32Codec struct {
}

func (b *Base32Codec) Name() string {
	return "base32"
}

func (b *Base32Codec) Description() string {
	return "Base32 encoding (RFC 4648)"
}

func (b *Base32Codec) Encode(text string) string {
	return base32.StdEncoding.EncodeToString([]byte(text))
}

func (b *Base32Codec) Decode(encoded string) (string, error) {
	res, err := base32.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", malformed(b.Name(), encoded, err)
	}
	return bytesToText(b.Name(), res)
}

func (b *Base32Codec) TestPatterns() []string {
	return []string{
		"aAbBABCDEFGHIJKLMNOPQRSTUVWXYZ234567",
	}
}
