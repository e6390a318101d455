package codec

import (
	"encoding/ascii85"
)

// -------------------------------------------------------

// Ascii85Codec encodes 4 bytes to 5 characters from the Adobe alphabet
// ('!' through 'u'). An all-zero group folds to 'z', and a trailing group of
// 1-3 bytes encodes to 2-4 characters with no padding.
type Ascii85Codec struct {
}

func (a *Ascii85Codec) Name() string {
	return "ascii85"
}

func (a *Ascii85Codec) Description() string {
	return "ASCII85/Base85 encoding"
}

func (a *Ascii85Codec) Encode(text string) string {
	data := []byte(text)
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return string(dst[:n])
}

func (a *Ascii85Codec) Decode(encoded string) (string, error) {
	src := []byte(encoded)
	dst := make([]byte, len(src)*4)
	ndst, _, err := ascii85.Decode(dst, src, true)
	if err != nil {
		return "", malformed(a.Name(), encoded, err)
	}
	return bytesToText(a.Name(), dst[:ndst])
}

func (a *Ascii85Codec) TestPatterns() []string {
	// 1-, 2- and 3-byte trailing groups plus a zero group folded to 'z'
	return []string{
		"sure.",
		"sure..",
		"sure...",
		"\x00\x00\x00\x00",
	}
}
