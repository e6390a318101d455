package list

import (
	"github.com/bokysan/textcodec/codec"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold  = "\x1b[1m"
	Reset = "\x1b[0m"
	White = "\x1b[97m"
	Gray  = "\x1b[90m"
)

// Command prints the supported schemes with their descriptions, in the
// registry's display order.
type Command struct {
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Available encodings"
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	ansi.Printf(Bold + "Available encodings:" + Reset + "\n")
	for _, cd := range codec.List() {
		ansi.Printf(Gray+"  %-12s "+White+"%s"+Reset+"\n", cd.Name(), cd.Description())
	}
	return nil
}
