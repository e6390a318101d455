package codec

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_BinaryCodec(t *testing.T) {
	for _, codecTest := range codecTests {
		codec := BinaryCodec{}
		encoded := codec.Encode(codecTest)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, codecTest, decoded)
	}
}

func Test_BinaryCodec_KnownVector(t *testing.T) {
	codec := BinaryCodec{}
	require.Equal(t, "01001000 01101001 00100001", codec.Encode("Hi!"))

	decoded, err := codec.Decode("01001000 01101001 00100001")
	require.NoError(t, err)
	require.Equal(t, "Hi!", decoded)
}

func Test_BinaryCodec_WhitespaceRuns(t *testing.T) {
	codec := BinaryCodec{}
	decoded, err := codec.Decode(" 01001000\t\t01101001 \n 00100001 ")
	require.NoError(t, err)
	require.Equal(t, "Hi!", decoded)
}

func Test_BinaryCodec_Malformed(t *testing.T) {
	codec := BinaryCodec{}
	for _, input := range []string{
		"1",                  // group is not 8 digits
		"010010000",          // too long
		"0100100a",           // not a binary digit
		"01001000 0110100",   // short second group
		"11111111",           // 0xff alone is not valid UTF-8
	} {
		_, err := codec.Decode(input)
		require.Error(t, err)
		require.IsType(t, &ErrMalformedInput{}, err)
	}
}
