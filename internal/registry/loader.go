package registry

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// defaultCitiesYAML is the compiled-in city table, used when no external
// file is configured.
//
//go:embed data/cities.yaml
var defaultCitiesYAML []byte

// cityFile is the YAML document shape of a city table file.
type cityFile struct {
	Cities []map[string]any `yaml:"cities"`
}

// Load reads a city table from the YAML file at path and builds a registry.
// An empty path loads the compiled-in default table.
func Load(path string) (*Registry, error) {
	if path == "" {
		return loadBytes(defaultCitiesYAML)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read city table %s: %w", path, err)
	}

	reg, err := loadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("city table %s: %w", path, err)
	}

	return reg, nil
}

// Default builds a registry from the compiled-in city table. The embedded
// table is validated at build time by tests, so failure here is programmer
// error.
func Default() (*Registry, error) {
	return loadBytes(defaultCitiesYAML)
}

// loadBytes decodes YAML city records and constructs the registry.
func loadBytes(data []byte) (*Registry, error) {
	var file cityFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse city table: %w", err)
	}

	cities := make([]City, 0, len(file.Cities))

	for i, raw := range file.Cities {
		var city City
		if err := mapstructure.Decode(raw, &city); err != nil {
			return nil, fmt.Errorf("decode city record %d: %w", i, err)
		}

		cities = append(cities, city)
	}

	return New(cities)
}
