// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EraLabel is a coarse historical-period bucket assigned to a street.
type EraLabel string

const (
	EraAncient      EraLabel = "ancient"
	EraMedieval     EraLabel = "medieval"
	EraEarlyModern  EraLabel = "early modern"
	EraModern       EraLabel = "modern"
	EraContemporary EraLabel = "contemporary"
	EraUnknown      EraLabel = "unknown"

	// EraTwentiethCentury is a display-only legend entry. Classification
	// never produces it; export consumers include it so legends stay
	// aligned with older renderings.
	EraTwentiethCentury EraLabel = "20th century"
)

// LegendOrder lists the era labels in display order for export consumers.
var LegendOrder = []EraLabel{
	EraAncient,
	EraMedieval,
	EraEarlyModern,
	EraModern,
	EraContemporary,
	EraTwentiethCentury,
	EraUnknown,
}

// StreetQuery identifies one street to classify. The pair is the lookup
// key: the same street name in a different city is a different query.
type StreetQuery struct {
	// Street is the raw street name as supplied (e.g. "Magdalen Street").
	Street string `json:"street" yaml:"street"`

	// City is the containing city, appended to the article title to
	// narrow the lookup (e.g. "Oxford").
	City string `json:"city" yaml:"city"`
}

// Title returns the article title queried for this street.
func (q StreetQuery) Title() string {
	return q.Street + ", " + q.City
}

// StreetEraRecord is the classification outcome for one street. Records
// are never mutated after insertion into the ResultMapping.
type StreetEraRecord struct {
	// Era is the classified historical era.
	Era EraLabel `json:"era" yaml:"era"`

	// Context is the justification phrase pulled from the article
	// ("named after ...", "in honor of ..."), without trailing
	// punctuation. Empty when no phrase template matched.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// ResultMapping maps street name to its classification. Streets whose
// lookup failed permanently are absent, not present with a placeholder.
type ResultMapping map[string]StreetEraRecord
