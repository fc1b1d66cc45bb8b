// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/street-eras/pkg/types"
)

const (
	streetColWidth  = 32
	eraColWidth     = 14
	contextColWidth = 56
)

// FormatTable writes the mapping as a human-readable table, sorted by
// street name. Column widths are measured with runewidth so names outside
// the Latin script stay aligned.
func FormatTable(mapping types.ResultMapping, w io.Writer) {
	if len(mapping) == 0 {
		fmt.Fprintln(w, "No streets classified.")
		return
	}

	streets := make([]string, 0, len(mapping))
	for street := range mapping {
		streets = append(streets, street)
	}
	sort.Strings(streets)

	fmt.Fprintf(w, "%s  %s  %s\n",
		pad("Street", streetColWidth), pad("Era", eraColWidth), "Context")
	fmt.Fprintln(w, strings.Repeat("-", streetColWidth+eraColWidth+contextColWidth+4))

	for _, street := range streets {
		rec := mapping[street]
		fmt.Fprintf(w, "%s  %s  %s\n",
			pad(clip(street, streetColWidth), streetColWidth),
			pad(string(rec.Era), eraColWidth),
			clip(rec.Context, contextColWidth))
	}

	fmt.Fprintf(w, "\n%d street(s) classified\n", len(mapping))
}

func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func clip(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-3, "") + "..."
}
