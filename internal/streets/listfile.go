// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package streets

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// ListFile is the on-disk representation of a fetched street list. Saving
// a fetch to a file lets a run be repeated offline without hitting
// Overpass again.
type ListFile struct {
	City      string    `yaml:"city"`
	Country   string    `yaml:"country,omitempty"`
	FetchedAt time.Time `yaml:"fetched_at"`
	Names     []string  `yaml:"names"`
}

// WriteListFile saves a street list to a YAML file.
func WriteListFile(path, city, country string, names []string) error {
	lf := ListFile{
		City:      city,
		Country:   country,
		FetchedAt: time.Now(),
		Names:     names,
	}
	data, err := yaml.Marshal(&lf)
	if err != nil {
		return fmt.Errorf("marshaling street list: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadListFile loads a previously saved street list. Names are flattened
// on the way in so hand-edited files with composite entries still satisfy
// the supplier contract.
func ReadListFile(path string) (*ListFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading street list: %w", err)
	}
	var lf ListFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing street list: %w", err)
	}

	var names []string
	for _, n := range lf.Names {
		names = append(names, Flatten(n)...)
	}
	lf.Names = names
	return &lf, nil
}
