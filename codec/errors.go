package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrUnknownScheme is raised when the requested scheme identifier is not registered.
type ErrUnknownScheme struct {
	Scheme string
	Known  []string
}

func (e *ErrUnknownScheme) Error() string {
	return fmt.Sprintf("unsupported encoding %q, valid encodings are: %s", e.Scheme, strings.Join(e.Known, ", "))
}

// ErrMalformedInput is raised when decode input does not conform to the scheme's
// grammar. Fragment carries the offending part of the input, when known.
type ErrMalformedInput struct {
	Scheme   string
	Fragment string
	Reason   error
}

func (e *ErrMalformedInput) Error() string {
	msg := fmt.Sprintf("malformed %s input", e.Scheme)
	if e.Fragment != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Fragment)
	}
	if e.Reason != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Reason)
	}
	return msg
}

func (e *ErrMalformedInput) Cause() error {
	return e.Reason
}

func (e *ErrMalformedInput) Unwrap() error {
	return e.Reason
}

// malformed wraps a decode failure into ErrMalformedInput, keeping the cause's stack.
func malformed(scheme, fragment string, reason error) error {
	if reason != nil {
		reason = errors.WithStack(reason)
	}
	return &ErrMalformedInput{
		Scheme:   scheme,
		Fragment: fragment,
		Reason:   reason,
	}
}

// bytesToText reassembles decoded bytes into text. Byte-oriented schemes encode
// the UTF-8 representation of their input, so anything that does not decode back
// to valid UTF-8 cannot have been produced by the matching encoder.
func bytesToText(scheme string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", malformed(scheme, "", errors.Errorf("decoded bytes are not valid UTF-8"))
	}
	return string(data), nil
}
