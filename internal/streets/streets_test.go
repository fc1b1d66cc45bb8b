// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package streets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/street-eras/pkg/types"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"High Street", []string{"High Street"}},
		{"Broad Street/Holywell Street", []string{"Broad Street", "Holywell Street"}},
		{"A / B", []string{"A", "B"}},
		{"/Leading Lane", []string{"Leading Lane"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Flatten(tt.in), "input %q", tt.in)
	}
}

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		query := r.Form.Get("data")
		assert.Contains(t, query, `"name"="Oxford"`)
		assert.Contains(t, query, `["highway"]["name"]`)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"elements":[
			{"tags":{"highway":"residential","name":"High Street"}},
			{"tags":{"highway":"primary","name":"Broad Street/Holywell Street"}},
			{"tags":{"highway":"residential"}},
			{"tags":{"highway":"residential","name":"High Street"}}
		]}`)
	}))
	defer ts.Close()

	old := overpassBase
	overpassBase = ts.URL
	defer func() { overpassBase = old }()

	cfg := types.StreetsConfig{HTTPConfig: types.HTTPConfig{UserAgent: "street-eras-test/0.1"}}
	names, err := Fetch(context.Background(), &http.Client{Timeout: 2 * time.Second}, "Oxford", cfg)
	require.NoError(t, err)

	// Composite names are split, order and duplicates are preserved, and
	// unnamed ways are dropped.
	assert.Equal(t, []string{"High Street", "Broad Street", "Holywell Street", "High Street"}, names)
}

func TestFetch_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer ts.Close()

	old := overpassBase
	overpassBase = ts.URL
	defer func() { overpassBase = old }()

	_, err := Fetch(context.Background(), ts.Client(), "Oxford", types.StreetsConfig{})
	assert.ErrorContains(t, err, "HTTP 504")
}

func TestReadListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streets.yaml")
	content := `city: Oxford
country: United Kingdom
fetched_at: 2026-08-01T12:00:00Z
names:
  - High Street
  - Broad Street/Holywell Street
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lf, err := ReadListFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Oxford", lf.City)
	assert.Equal(t, "United Kingdom", lf.Country)
	// Composite entries in hand-edited files are flattened on read.
	assert.Equal(t, []string{"High Street", "Broad Street", "Holywell Street"}, lf.Names)
}

func TestWriteListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streets.yaml")
	require.NoError(t, WriteListFile(path, "Oxford", "", []string{"High Street", "New Road"}))

	lf, err := ReadListFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Oxford", lf.City)
	assert.Equal(t, []string{"High Street", "New Road"}, lf.Names)
	assert.WithinDuration(t, time.Now(), lf.FetchedAt, time.Minute)
}
