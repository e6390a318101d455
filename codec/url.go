package codec

import (
	"strings"

	"github.com/pkg/errors"
)

const upperhex = "0123456789ABCDEF"

// isUnreserved reports whether c is in the RFC 3986 unreserved set and may
// appear in the encoded output as-is.
func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// -------------------------------------------------------

// UrlCodec percent-encodes every byte outside the RFC 3986 unreserved set.
// A space becomes "%20", never "+". The standard library escapers keep
// different alphabets (net/url.QueryEscape maps a space to '+' and PathEscape
// leaves sub-delimiters alone), so the translation is done by hand.
type UrlCodec struct {
}

func (u *UrlCodec) Name() string {
	return "url"
}

func (u *UrlCodec) Description() string {
	return "URL/Percent encoding (RFC 3986)"
}

func (u *UrlCodec) Encode(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
		}
	}
	return sb.String()
}

func (u *UrlCodec) Decode(encoded string) (string, error) {
	res := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != '%' {
			res = append(res, c)
			continue
		}
		if i+2 >= len(encoded) {
			return "", malformed(u.Name(), encoded[i:], errors.Errorf("'%%' not followed by two hex digits"))
		}
		hi, okHi := unhex(encoded[i+1])
		lo, okLo := unhex(encoded[i+2])
		if !okHi || !okLo {
			return "", malformed(u.Name(), encoded[i:i+3], errors.Errorf("'%%' not followed by two hex digits"))
		}
		res = append(res, hi<<4|lo)
		i += 2
	}
	return bytesToText(u.Name(), res)
}

func (u *UrlCodec) TestPatterns() []string {
	return []string{
		"unreserved-._~ABCxyz019",
		"reserved :/?#[]@!$&'()*+,;= and spaces",
	}
}
