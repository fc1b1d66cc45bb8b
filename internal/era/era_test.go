// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package era

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/street-eras/pkg/types"
)

func TestCenturyOf(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1, "1st century"},
		{100, "1st century"},
		{101, "2nd century"},
		{250, "3rd century"},
		{600, "6th century"},
		{1066, "11th century"},
		{1150, "12th century"},
		{1215, "13th century"},
		{1899, "19th century"},
		{1901, "20th century"},
		{2001, "21st century"},
		{2101, "22nd century"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CenturyOf(tt.year), "year %d", tt.year)
	}
}

// The teens never take st/nd/rd: 11th, 12th, 13th.
func TestCenturyOf_TeenSuffixes(t *testing.T) {
	assert.Equal(t, "11th century", CenturyOf(1001))
	assert.Equal(t, "12th century", CenturyOf(1101))
	assert.Equal(t, "13th century", CenturyOf(1201))
}

func TestEraOf(t *testing.T) {
	tests := []struct {
		label string
		want  types.EraLabel
	}{
		{"1st century", types.EraAncient},
		{"5", types.EraAncient},
		{"6th century", types.EraMedieval},
		{"15", types.EraMedieval},
		{"16th century", types.EraEarlyModern},
		{"18", types.EraEarlyModern},
		{"19th century", types.EraModern},
		// The numeric range wins at century 20; the "20th" prefix rule
		// only applies to labels outside every range.
		{"20th century", types.EraModern},
		{"20", types.EraModern},
		{"21st century", types.EraUnknown},
		{"0th century", types.EraUnknown},
	}
	for _, tt := range tests {
		got, err := EraOf(tt.label)
		require.NoError(t, err, "label %q", tt.label)
		assert.Equal(t, tt.want, got, "label %q", tt.label)
	}
}

func TestEraOf_NoDigits(t *testing.T) {
	_, err := EraOf("sometime long ago")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "sometime long ago", perr.Label)
}

// Round trip: every year lands in the closed label set.
func TestEraOf_CenturyOf_Closed(t *testing.T) {
	closed := map[types.EraLabel]bool{
		types.EraAncient:      true,
		types.EraMedieval:     true,
		types.EraEarlyModern:  true,
		types.EraModern:       true,
		types.EraContemporary: true,
		types.EraUnknown:      true,
	}
	for _, year := range []int{1, 600, 999, 1066, 1492, 1899, 1901, 1999, 2026, 9999} {
		got, err := EraOf(CenturyOf(year))
		require.NoError(t, err, "year %d", year)
		assert.True(t, closed[got], "year %d classified as %q", year, got)
	}
}
