package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/commands/decode"
	"github.com/bokysan/textcodec/internal/commands/encode"
	"github.com/bokysan/textcodec/internal/commands/list"
	"github.com/bokysan/textcodec/internal/commands/version"
	tcFlags "github.com/bokysan/textcodec/internal/flags"
	"github.com/bokysan/textcodec/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// TextCodec is the main executable
type TextCodec struct {
	parser *flags.Parser
}

// NewTextCodec will create a new instance of TextCodec and initialize the parser
func NewTextCodec() *TextCodec {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	tc := &TextCodec{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	tc.setupGeneral()
	tc.setupVersion()
	tc.setupEncode()
	tc.setupDecode()
	tc.setupList()

	return tc
}

// setupGeneral will configure general options
func (tc *TextCodec) setupGeneral() {
	if _, err := tc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (tc *TextCodec) setupVersion() {
	cmd := &version.Command{}
	_, err := tc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (tc *TextCodec) setupEncode() {
	cmd := encode.NewCommand()
	_, err := tc.parser.AddCommand(
		"encode",
		"Encode text",
		"Encode the given text (or stdin) with the selected scheme",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (tc *TextCodec) setupDecode() {
	cmd := decode.NewCommand()
	_, err := tc.parser.AddCommand(
		"decode",
		"Decode text",
		"Decode the given text (or stdin) with the selected scheme",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupList adds the `list` command
func (tc *TextCodec) setupList() {
	cmd := list.NewCommand()
	_, err := tc.parser.AddCommand(
		"list",
		"List encodings",
		"List all supported encoding schemes and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main parses the command line, optionally reading a configuration file first
func main() {

	textCodec := NewTextCodec()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := tcFlags.NewYamlParser(textCodec.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := textCodec.parser.Parse()
	util.MustErrorNilOrExit(err)

}
