package instance

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML shape of an instance.
type document struct {
	Supply []int       `yaml:"supply"`
	Demand []int       `yaml:"demand"`
	Cost   [][]float64 `yaml:"cost"`
}

// ParseYAML decodes a YAML instance (see package doc).
func ParseYAML(r io.Reader) (*Instance, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrUnparsable, err)
	}

	return New(doc.Supply, doc.Demand, doc.Cost)
}

// WriteYAML encodes in as a YAML document.
func (in *Instance) WriteYAML(w io.Writer) error {
	doc := document{
		Supply: in.Supply,
		Demand: in.Demand,
		Cost:   in.Cost.ToRows(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
