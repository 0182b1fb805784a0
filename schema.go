package textdb

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Schema describes the layout of a table file. It is usually loaded from
// a YAML descriptor stored next to the data:
//
//	delimiter: "\n"
//	separator: "\t"
//	key_column: 0
//	key_type: uint
type Schema struct {
	Delimiter string  `yaml:"delimiter"`  // record delimiter, default "\n"
	Separator string  `yaml:"separator"`  // column separator, default "\t"
	KeyColumn int     `yaml:"key_column"` // index of the key column
	KeyType   KeyType `yaml:"key_type"`   // text, int, uint or float
	ScanSize  int     `yaml:"scan_size"`  // boundary scan window
}

// LoadSchema reads a YAML schema file.
func LoadSchema(name string) (*Schema, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "textdb: read schema %s", name)
	}
	return ParseSchema(data)
}

// ParseSchema parses a YAML schema and applies defaults.
func ParseSchema(data []byte) (*Schema, error) {
	s := &Schema{
		Delimiter: string(defaultDelimiter),
		Separator: string(defaultSeparator),
		KeyType:   TextKey,
		ScanSize:  defaultScanSize,
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "textdb: parse schema")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) validate() error {
	if len(s.Delimiter) != 1 || len(s.Separator) != 1 {
		return errBadDelimiter
	}
	if s.Delimiter == s.Separator {
		return errors.New("textdb: delimiter and separator must differ")
	}
	if s.KeyColumn < 0 {
		return errors.Errorf("textdb: negative key column %d", s.KeyColumn)
	}
	if !s.KeyType.isValid() {
		return errors.Errorf("textdb: invalid key type %v", s.KeyType)
	}
	return nil
}

// Accessor returns an accessor for the schema.
func (s *Schema) Accessor() Accessor {
	return &ColumnAccessor{
		KeyColumn: s.KeyColumn,
		Separator: s.Separator[0],
		Type:      s.KeyType,
	}
}

// Options returns table options for the schema.
func (s *Schema) Options() *Options {
	return &Options{
		Delimiter: s.Delimiter[0],
		ScanSize:  s.ScanSize,
	}
}

// Open memory-maps the named file and returns a Table laid out according
// to the schema.
func (s *Schema) Open(name string) (*Table, error) {
	return Open(name, s.Accessor(), s.Options())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *KeyType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	kt, err := ParseKeyType(s)
	if err != nil {
		return err
	}
	*t = kt
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t KeyType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
