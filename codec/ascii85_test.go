package codec

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Ascii85Codec(t *testing.T) {
	for _, codecTest := range codecTests {
		codec := Ascii85Codec{}
		encoded := codec.Encode(codecTest)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, codecTest, decoded)
	}
}

func Test_Ascii85Codec_ShortTrailingGroups(t *testing.T) {
	codec := Ascii85Codec{}
	// 1, 2 and 3 bytes past the last full 4-byte group
	for _, codecTest := range []string{"sure.", "sure..", "sure...", "a", "ab", "abc"} {
		encoded := codec.Encode(codecTest)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, codecTest, decoded)
	}
}

func Test_Ascii85Codec_ZeroGroupFolding(t *testing.T) {
	codec := Ascii85Codec{}
	require.Equal(t, "z", codec.Encode("\x00\x00\x00\x00"))

	decoded, err := codec.Decode("z")
	require.NoError(t, err)
	require.Equal(t, "\x00\x00\x00\x00", decoded)
}

func Test_Ascii85Codec_Malformed(t *testing.T) {
	codec := Ascii85Codec{}
	for _, input := range []string{
		"v123",  // 'v' is outside the alphabet
		"|",     // so is '|'
		"87cUR'", // trailing single character cannot form a group
	} {
		_, err := codec.Decode(input)
		require.Error(t, err)
		require.IsType(t, &ErrMalformedInput{}, err)
	}
}
