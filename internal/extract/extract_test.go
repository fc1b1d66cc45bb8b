// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_CenturyMention(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"with suffix", "The street dates from the 6th century.", "6"},
		{"without suffix", "Laid out in the 13 century according to records.", "13"},
		{"case insensitive", "A 3RD CENTURY road crossed here.", "3"},
		{"two digits", "Rebuilt in the 18th century after the fire.", "18"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.content).Century)
		})
	}
}

func TestExtract_BareYear(t *testing.T) {
	rec := Extract("The terrace was completed in 1887 by the borough.")
	assert.Equal(t, "19th century", rec.Century)
}

// A century mention wins over an unrelated 4-digit number.
func TestExtract_CenturyBeatsYear(t *testing.T) {
	rec := Extract("Some 2500 residents live on this 6th century lane.")
	assert.Equal(t, "6", rec.Century)

	rec = Extract("Restored in 1850, the church tower is 12th century work.")
	assert.Equal(t, "12", rec.Century)
}

func TestExtract_NoEraToken(t *testing.T) {
	rec := Extract("A short residential street with no dated history.")
	assert.Empty(t, rec.Century)
}

func TestExtract_ContextTemplates(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"named after", "The road was named after John Radcliffe.", "John Radcliffe"},
		{"named for", "It was named for the old mill.", "the old mill"},
		{"commemorates", "The square commemorates the Battle of Trafalgar.", "Battle of Trafalgar"},
		{"in honor of", "Renamed in honor of the returning regiment.", "the returning regiment"},
		{"celebrates", "The avenue celebrates a royal visit.", "royal visit"},
		{"recognizes", "The lane recognizes local benefactors.", "local benefactors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.content).Context)
		})
	}
}

// The first template in fixed order wins; templates are never combined.
func TestExtract_ContextPriority(t *testing.T) {
	content := "Dedicated in honor of the mayor. It was named after William Morris."
	rec := Extract(content)
	assert.Equal(t, "William Morris", rec.Context)
}

func TestExtract_ContextOptional(t *testing.T) {
	rec := Extract("First recorded in the 14th century.")
	assert.Equal(t, "14", rec.Century)
	assert.Empty(t, rec.Context)
}

func TestExtract_NoTrailingPunctuation(t *testing.T) {
	rec := Extract("The street was named after Queen Victoria. It runs north.")
	assert.Equal(t, "Queen Victoria", rec.Context)
}
