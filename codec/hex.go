package codec

import (
	"encoding/hex"
)

// -------------------------------------------------------

// HexCodec encodes every byte to a pair of lowercase hexadecimal digits, with
// no separator. Decoding accepts both lowercase and uppercase digits.
type HexCodec struct {
}

func (h *HexCodec) Name() string {
	return "hex"
}

func (h *HexCodec) Description() string {
	return "Hexadecimal encoding"
}

func (h *HexCodec) Encode(text string) string {
	return hex.EncodeToString([]byte(text))
}

func (h *HexCodec) Decode(encoded string) (string, error) {
	res, err := hex.DecodeString(encoded)
	if err != nil {
		return "", malformed(h.Name(), encoded, err)
	}
	return bytesToText(h.Name(), res)
}

func (h *HexCodec) TestPatterns() []string {
	return []string{
		"0123456789abcdefABCDEF",
	}
}
