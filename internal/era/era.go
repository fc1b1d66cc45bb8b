// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package era maps years and century labels to coarse historical eras.
package era

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pdiddy/street-eras/pkg/types"
)

// ParseError reports a century label with no leading digits. Internally
// generated labels always carry digits, so seeing this means the caller
// handed over malformed external text.
type ParseError struct {
	Label string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no century number in %q", e.Label)
}

// CenturyOf converts a calendar year to its century label, e.g.
// 1066 → "11th century". Defined for year >= 1; the extraction patterns
// only produce 4-digit years, so smaller values never reach it.
func CenturyOf(year int) string {
	century := (year-1)/100 + 1
	return fmt.Sprintf("%d%s century", century, ordinalSuffix(century))
}

// ordinalSuffix follows English rules: 1→st, 2→nd, 3→rd, otherwise th,
// except that the teens (11th–19th, 111th, ...) always take th.
func ordinalSuffix(n int) string {
	if n%100/10 == 1 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var centuryNumRe = regexp.MustCompile(`(\d+)`)

// Era boundaries, inclusive century ranges.
var eraRanges = []struct {
	low, high int
	label     types.EraLabel
}{
	{1, 5, types.EraAncient},
	{6, 15, types.EraMedieval},
	{16, 18, types.EraEarlyModern},
	{19, 20, types.EraModern},
}

// twentiethPrefixRe matches labels that start with "20th", case-insensitive.
var twentiethPrefixRe = regexp.MustCompile(`^(?i)20th`)

// EraOf maps a century label ("6th century", or bare digits like "6" as
// captured from prose) to an era. The numeric ranges are consulted first;
// a label outside every range classifies as contemporary only when its
// text begins with "20th", and as unknown otherwise.
func EraOf(century string) (types.EraLabel, error) {
	m := centuryNumRe.FindStringSubmatch(century)
	if m == nil {
		return "", &ParseError{Label: century}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", &ParseError{Label: century}
	}

	for _, r := range eraRanges {
		if n >= r.low && n <= r.high {
			return r.label, nil
		}
	}
	if twentiethPrefixRe.MatchString(century) {
		return types.EraContemporary, nil
	}
	return types.EraUnknown, nil
}
