package market

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// snapshotFile is the YAML document shape of a market snapshot file:
//
//	entries:
//	  dallas|12-month:
//	    search_volume: 2400
//	    competition: 0.55
type snapshotFile struct {
	Entries map[string]Data `yaml:"entries"`
}

// LoadFile reads a market snapshot from a YAML file and returns a static
// provider over it. Snapshots are produced offline by whatever keyword
// tooling the marketing side runs; the engine only reads them.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read market snapshot %s: %w", path, err)
	}

	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse market snapshot %s: %w", path, err)
	}

	return NewStatic(file.Entries), nil
}
