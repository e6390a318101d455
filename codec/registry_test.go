package codec

import (
	"github.com/stretchr/testify/require"
	"testing"
)

var registryOrder = []string{
	"base64", "base32", "hex", "url", "html", "rot13", "ascii85", "binary", "octal",
}

func Test_Registry_List(t *testing.T) {
	list := List()
	require.Len(t, list, len(registryOrder))
	for i, c := range list {
		require.Equal(t, registryOrder[i], c.Name())
		require.NotEmpty(t, c.Description())
	}

	// the order is fixed across calls
	again := List()
	for i, c := range again {
		require.Equal(t, list[i].Name(), c.Name())
	}
}

func Test_Registry_Lookup(t *testing.T) {
	for _, name := range registryOrder {
		c, err := Default().Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, c.Name())
	}
}

func Test_Registry_UnknownScheme(t *testing.T) {
	_, err := Encode("x", "nosuchscheme")
	require.Error(t, err)
	require.IsType(t, &ErrUnknownScheme{}, err)
	require.Contains(t, err.Error(), "nosuchscheme")
	require.Contains(t, err.Error(), "base64")

	_, err = Decode("x", "nosuchscheme")
	require.Error(t, err)
	require.IsType(t, &ErrUnknownScheme{}, err)
}

func Test_Registry_RoundTrip(t *testing.T) {
	for _, c := range List() {
		for _, codecTest := range codecTests {
			encoded, err := Encode(codecTest, c.Name())
			require.NoError(t, err)
			decoded, err := Decode(encoded, c.Name())
			require.NoError(t, err)
			require.Equal(t, codecTest, decoded, "scheme %s did not round-trip %q", c.Name(), codecTest)
		}
	}
}

func Test_Registry_TestPatterns(t *testing.T) {
	for _, c := range List() {
		for _, pattern := range c.TestPatterns() {
			encoded := c.Encode(pattern)
			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, pattern, decoded, "scheme %s did not round-trip its own pattern", c.Name())
		}
	}
}

func Test_Registry_MalformedPropagates(t *testing.T) {
	_, err := Decode("1", "binary")
	require.Error(t, err)
	require.IsType(t, &ErrMalformedInput{}, err)
}
