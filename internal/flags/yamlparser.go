package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser feeds a YAML configuration file into a flags.Parser, so every
// option can come either from the command line or from a config file. Top
// level keys are matched against command/group names.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from a yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Referenced files are resolved relative to the config file itself.
	return y.parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// parse reads YAML documents off the stream one by one; a single file may
// carry several documents separated by triple dashes (`---`).
func (y *YamlParser) parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseDocument maps every top-level key of the document to the command or
// group registered under the same name and unmarshals the key's value over
// that group's data.
func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}

		if err := applyToGroup(command.Group, val); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// applyToGroup unmarshals val over the group's backing struct. The flags
// library keeps that struct in an unexported field, so it has to be pried
// out through reflection.
func applyToGroup(group *flags.Group, val interface{}) error {
	g := reflect.Indirect(reflect.ValueOf(group))
	dataField := g.FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	data := dataField.Elem().Interface()

	conv, err := yaml.Marshal(val)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(yaml.Unmarshal(conv, data))
}
