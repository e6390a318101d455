package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// -------------------------------------------------------

// OctalCodec renders every byte as a zero-padded three-digit octal number,
// with a single space between bytes. Decoding splits on any whitespace run;
// groups may be shorter than three digits as long as the value fits a byte.
type OctalCodec struct {
}

func (o *OctalCodec) Name() string {
	return "octal"
}

func (o *OctalCodec) Description() string {
	return "Octal representation (base 8)"
}

func (o *OctalCodec) Encode(text string) string {
	data := []byte(text)
	groups := make([]string, len(data))
	for i, c := range data {
		groups[i] = fmt.Sprintf("%03o", c)
	}
	return strings.Join(groups, " ")
}

func (o *OctalCodec) Decode(encoded string) (string, error) {
	groups := strings.Fields(encoded)
	res := make([]byte, 0, len(groups))
	for _, group := range groups {
		val, err := strconv.ParseUint(group, 8, 8)
		if err != nil {
			return "", malformed(o.Name(), group, err)
		}
		res = append(res, byte(val))
	}
	return bytesToText(o.Name(), res)
}

func (o *OctalCodec) TestPatterns() []string {
	return []string{
		"Hi!",
		"\x00\x7f",
	}
}
