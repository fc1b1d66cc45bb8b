// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/street-eras/pkg/types"
)

// ExportEntry is one street's classification in export form.
type ExportEntry struct {
	Street  string `json:"street" yaml:"street"`
	Era     string `json:"era" yaml:"era"`
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// entries flattens a mapping into export rows sorted by street name, so
// exports are deterministic regardless of completion order.
func entries(mapping types.ResultMapping) []ExportEntry {
	out := make([]ExportEntry, 0, len(mapping))
	for street, rec := range mapping {
		out = append(out, ExportEntry{
			Street:  street,
			Era:     string(rec.Era),
			Context: rec.Context,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Street < out[j].Street })
	return out
}

// ExportCSV writes the mapping as CSV with a header row.
func ExportCSV(mapping types.ResultMapping, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"street", "era", "context"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range entries(mapping) {
		if err := cw.Write([]string{e.Street, e.Era, e.Context}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSON writes the mapping as indented JSON.
func ExportJSON(mapping types.ResultMapping, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries(mapping))
}

// ExportYAML writes the mapping as YAML.
func ExportYAML(mapping types.ResultMapping, w io.Writer) error {
	data, err := yaml.Marshal(entries(mapping))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
