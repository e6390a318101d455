package encode

import (
	"fmt"
	"os"

	"github.com/bokysan/textcodec/codec"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util"
	log "github.com/sirupsen/logrus"
)

// Command encodes its positional arguments, one per output line. With no
// arguments the text is read from stdin instead.
type Command struct {
	Scheme string `json:"scheme" short:"s" long:"scheme" env:"SCHEME" required:"true" description:"Encoding scheme to apply, e.g. 'base64'. Run 'list' for all supported schemes."`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	cd, err := codec.Default().Lookup(c.Scheme)
	if err != nil {
		return err
	}

	texts := args
	if len(texts) == 0 {
		text, err := util.ReadInput(os.Stdin)
		if err != nil {
			return err
		}
		texts = []string{text}
	}

	for _, text := range texts {
		log.Debugf("Encoding %d bytes as %s", len(text), cd.Name())
		fmt.Println(cd.Encode(text))
	}
	return nil
}
