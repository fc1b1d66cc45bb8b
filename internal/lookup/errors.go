// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no article exists for the queried title. It is
// terminal: the street is skipped without retry.
var ErrNotFound = errors.New("no article found")

// AmbiguousError reports that the title resolved to a disambiguation page
// rather than a single article. Candidates preserves the page's link order;
// the resolver follows the first one.
type AmbiguousError struct {
	Title      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous title %q (%d candidates)", e.Title, len(e.Candidates))
}

// TransientError wraps a failure expected to be retry-recoverable, such as
// a timed-out or rate-limited request.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient lookup failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }
