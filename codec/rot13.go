package codec

import (
	"strings"
)

// rot13 shifts ASCII letters by 13 positions within their own case.
// Everything else, multi-byte runes included, is left alone.
func rot13(r rune) rune {
	switch {
	case 'a' <= r && r <= 'z':
		return 'a' + (r-'a'+13)%26
	case 'A' <= r && r <= 'Z':
		return 'A' + (r-'A'+13)%26
	}
	return r
}

// -------------------------------------------------------

// Rot13Codec is the classic self-inverse letter substitution: applying it
// twice returns the original text, so Decode is just Encode again.
type Rot13Codec struct {
}

func (r *Rot13Codec) Name() string {
	return "rot13"
}

func (r *Rot13Codec) Description() string {
	return "ROT13 substitution cipher"
}

func (r *Rot13Codec) Encode(text string) string {
	return strings.Map(rot13, text)
}

func (r *Rot13Codec) Decode(encoded string) (string, error) {
	return strings.Map(rot13, encoded), nil
}

func (r *Rot13Codec) TestPatterns() []string {
	return []string{
		"The Quick Brown Fox Jumps Over The Lazy Dog",
		"nowhere ABJURER",
	}
}
