package audit

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var defaultCatalog []byte

// Catalog is the set of recognized governance action names offered as
// history filters.
type Catalog struct {
	Actions []string `yaml:"actions"`
}

// LoadCatalog reads an action catalog from path, falling back to the
// built-in set when path is empty.
func LoadCatalog(path string) (Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
		if err != nil {
			return Catalog{}, fmt.Errorf("read event catalog: %w", err)
		}
		data = b
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse event catalog: %w", err)
	}
	return c, nil
}
