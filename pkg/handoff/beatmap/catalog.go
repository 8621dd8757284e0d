package beatmap

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Catalog is the YAML fixture format used to seed a Manager.
//
//	sets:
//	  - id: 1
//	    title: Example
//	    artist: Someone
//	    difficulties:
//	      - {id: 10, version: Easy, ruleset: osu}
type Catalog struct {
	Sets []*Set `yaml:"sets"`
}

// LoadCatalog decodes a catalog from r.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("beatmap: decode catalog: %w", err)
	}
	return &catalog, nil
}

// Import adds every set of the catalog to m.
func (c *Catalog) Import(m *Manager) error {
	return m.Add(c.Sets...)
}
