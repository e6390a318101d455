package util

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
)

// ReadInput slurps the whole reader and trims surrounding whitespace, so that
// a trailing newline from `echo` or a pipe does not end up in the encoded
// output.
func ReadInput(r io.Reader) (string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return "", errors.Wrapf(err, "Could not read input")
	}
	return strings.TrimSpace(string(data)), nil
}
