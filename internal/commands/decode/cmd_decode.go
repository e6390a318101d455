package decode

import (
	"fmt"
	"os"

	"github.com/bokysan/textcodec/codec"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// Command decodes its positional arguments, one per output line. With no
// arguments the text is read from stdin instead. Arguments are independent:
// a malformed one does not stop the others from being decoded, but any
// failure makes the command exit non-zero.
type Command struct {
	Scheme string `json:"scheme" short:"s" long:"scheme" env:"SCHEME" required:"true" description:"Encoding scheme to reverse, e.g. 'base64'. Run 'list' for all supported schemes."`
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

	var errs error
	for _, text := range texts {
		log.Debugf("Decoding %d bytes as %s", len(text), cd.Name())
		decoded, err := cd.Decode(text)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		fmt.Println(decoded)
	}
	return errs
}
