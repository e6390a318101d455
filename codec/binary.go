package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// BinaryCodec renders every byte as exactly eight binary digits, with a single
// space between bytes. Decoding splits on any whitespace run and insists on
// eight-digit groups.
type BinaryCodec struct {
}

func (b *BinaryCodec) Name() string {
	return "binary"
}

func (b *BinaryCodec) Description() string {
	return "Binary representation (base 2)"
}

func (b *BinaryCodec) Encode(text string) string {
	data := []byte(text)
	groups := make([]string, len(data))
	for i, c := range data {
		groups[i] = fmt.Sprintf("%08b", c)
	}
	return strings.Join(groups, " ")
}

func (b *BinaryCodec) Decode(encoded string) (string, error) {
	groups := strings.Fields(encoded)
	res := make([]byte, 0, len(groups))
	for _, group := range groups {
		if len(group) != 8 {
			return "", malformed(b.Name(), group, errors.Errorf("group is %d digits long, expected 8", len(group)))
		}
		val, err := strconv.ParseUint(group, 2, 8)
		if err != nil {
			return "", malformed(b.Name(), group, err)
		}
		res = append(res, byte(val))
	}
	return bytesToText(b.Name(), res)
}

func (b *BinaryCodec) TestPatterns() []string {
	return []string{
		"Hi!",
		"\x00\x7f",
	}
}
