package decode

import (
	"testing"

	"github.com/bokysan/textcodec/codec"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func Test_DecodeCommand(t *testing.T) {
	cmd := NewCommand()
	cmd.Scheme = "base64"

	err := cmd.Execute([]string{"SGVsbG8sIFdvcmxkIQ=="})
	require.NoError(t, err)
}

func Test_DecodeCommand_UnknownScheme(t *testing.T) {
	cmd := NewCommand()
	cmd.Scheme = "nosuchscheme"

	err := cmd.Execute([]string{"x"})
	require.Error(t, err)
	require.IsType(t, &codec.ErrUnknownScheme{}, err)
}

func Test_DecodeCommand_CollectsMalformedArguments(t *testing.T) {
	cmd := NewCommand()
	cmd.Scheme = "binary"

	// both bad groups are reported, not just the first one
	err := cmd.Execute([]string{"1", "01001000", "010"})
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	for _, e := range merr.Errors {
		require.IsType(t, &codec.ErrMalformedInput{}, e)
	}
}
