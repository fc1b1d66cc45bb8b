// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls an era token and a naming-context phrase out of
// encyclopedia article prose using ordered pattern rules.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/street-eras/internal/era"
)

// Era token patterns, in priority order. An explicit century mention beats
// a bare 4-digit year because it is less ambiguous.
var (
	// centuryMentionRe matches "6th century", "11 century", "3rd Century".
	centuryMentionRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)? century\b`)

	// bareYearRe matches any 4-digit number, read as a calendar year.
	bareYearRe = regexp.MustCompile(`\b(\d{4})\b`)
)

// Context phrase templates, in priority order. Each captures up to the
// next sentence terminator; only the first template that matches anywhere
// in the text contributes, and templates are never combined.
var contextRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)named (?:after|for) ([^.]+)\.`),
	regexp.MustCompile(`(?i)commemorates? (?:the|an?)? ?([^.]+)\.`),
	regexp.MustCompile(`(?i)in honor of ([^.]+)\.`),
	regexp.MustCompile(`(?i)celebrates? (?:the|an?)? ?([^.]+)\.`),
	regexp.MustCompile(`(?i)recognizes? ([^.]+)\.`),
}

// Record is the raw extraction output for one article. Both fields are
// independently optional; an empty Century means the article yielded no
// era token and no street record should be emitted.
type Record struct {
	// Century is the century label: either the captured century number
	// as it appeared ("6") or a full label derived from a year
	// ("16th century").
	Century string

	// Context is the justification phrase, trimmed of the trailing
	// sentence terminator.
	Context string
}

// Extract applies the era and context pattern rules to article text.
func Extract(content string) Record {
	var rec Record

	if m := centuryMentionRe.FindStringSubmatch(content); m != nil {
		rec.Century = m[1]
	} else if m := bareYearRe.FindStringSubmatch(content); m != nil {
		year, _ := strconv.Atoi(m[1])
		rec.Century = era.CenturyOf(year)
	}

	for _, re := range contextRes {
		if m := re.FindStringSubmatch(content); m != nil {
			rec.Context = strings.TrimSpace(m[1])
			break
		}
	}

	return rec
}
