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

// YamlParser feeds a flags.Parser from a YAML file instead of a standard INI. Every top-level key of a YAML
// document names a command (e.g. `decode:`) and its value is unmarshalled into that command's options.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file.
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

	// Files may reference other files relative to their own location
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents, separated by triple dashes (`---`), one after another from the input stream.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every key of the document to a command and unmarshals the value into its options.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownCommand,
				Message: fmt.Sprintf("could not find command '%s'", name),
			})
		}

		// flags does not expose the structure behind a group, so it has to be dug out with reflection
		group := reflect.Indirect(reflect.ValueOf(command.Group))
		dataField := group.FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		options := dataField.Elem() // pointer to the command struct

		conv, err := yaml.Marshal(val)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := yaml.Unmarshal(conv, options.Interface()); err != nil {
			return errors.Wrapf(err, "Could not set options of command '%s'", name)
		}
	}
	return nil
}
