package codec

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_HexCodec(t *testing.T) {
	for _, codecTest := range codecTests {
		codec := HexCodec{}
		encoded := codec.Encode(codecTest)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, codecTest, decoded)
	}
}

func Test_HexCodec_LowercaseOutput(t *testing.T) {
	codec := HexCodec{}
	require.Equal(t, "48656c6c6f", codec.Encode("Hello"))
}

func Test_HexCodec_AcceptsBothCases(t *testing.T) {
	codec := HexCodec{}
	for _, input := range []string{"48656c6c6f", "48656C6C6F", "48656c6C6f"} {
		decoded, err := codec.Decode(input)
		require.NoError(t, err)
		require.Equal(t, "Hello", decoded)
	}
}

func Test_HexCodec_Malformed(t *testing.T) {
	codec := HexCodec{}
	for _, input := range []string{
		"abc", // odd length
		"zz",  // not hex digits
		"ff",  // 0xff alone is not valid UTF-8
	} {
		_, err := codec.Decode(input)
		require.Error(t, err)
		require.IsType(t, &ErrMalformedInput{}, err)
	}
}
