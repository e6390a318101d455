package codec

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Rot13Codec(t *testing.T) {
	for _, codecTest := range codecTests {
		codec := Rot13Codec{}
		encoded := codec.Encode(codecTest)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, codecTest, decoded)
	}
}

func Test_Rot13Codec_KnownVector(t *testing.T) {
	codec := Rot13Codec{}
	require.Equal(t, "Uryyb, Jbeyq!", codec.Encode("Hello, World!"))
}

func Test_Rot13Codec_Involution(t *testing.T) {
	codec := Rot13Codec{}
	for _, codecTest := range codecTests {
		require.Equal(t, codecTest, codec.Encode(codec.Encode(codecTest)))
	}
}

func Test_Rot13Codec_NonAsciiUnchanged(t *testing.T) {
	codec := Rot13Codec{}
	require.Equal(t, "čž日本語 123", codec.Encode("čž日本語 123"))
}
