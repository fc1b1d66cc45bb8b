// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package streets supplies the ordered list of street names for a place.
// The supplier contract is a flat sequence of individual names: composite
// map entries like "Broad Street/Holywell Street" are split here so the
// classification core never branches on shape.
package streets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/street-eras/pkg/types"
)

// overpassBase is the Overpass API endpoint. Declared as a var so tests
// can substitute an httptest server.
var overpassBase = "https://overpass-api.de/api/interpreter"

// overpassResponse holds the subset of the Overpass JSON output we read.
type overpassResponse struct {
	Elements []struct {
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Fetch queries Overpass for the named drivable ways of a city and returns
// their street names in response order. Duplicate names are preserved;
// callers that want one lookup per distinct name apply their own policy.
func Fetch(ctx context.Context, client *http.Client, city string, cfg types.StreetsConfig) ([]string, error) {
	query := fmt.Sprintf(
		`[out:json];area["name"=%q]["boundary"="administrative"]->.a;way(area.a)["highway"]["name"];out tags;`,
		city)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, overpassBase,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Overpass returned HTTP %d", resp.StatusCode)
	}

	var or overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("parsing Overpass response: %w", err)
	}

	var names []string
	for _, el := range or.Elements {
		if name, ok := el.Tags["name"]; ok {
			names = append(names, Flatten(name)...)
		}
	}
	return names, nil
}

// Flatten splits a composite map name ("A/B") into individual street names,
// dropping empty segments.
func Flatten(name string) []string {
	parts := strings.Split(name, "/")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}
