package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML list of sections and builds a catalog from it.
func Decode(r io.Reader) (*Catalog, error) {
	var sections []Section
	if err := yaml.NewDecoder(r).Decode(&sections); err != nil {
		if err == io.EOF {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(sections)
}

// Encode writes the catalog as YAML in the format Decode reads.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Sections()); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
