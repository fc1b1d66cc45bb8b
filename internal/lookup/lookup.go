// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup resolves a street to its article text and classification,
// with bounded retry on transient failures and bounded first-candidate
// disambiguation.
package lookup

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/pdiddy/street-eras/internal/era"
	"github.com/pdiddy/street-eras/internal/extract"
	"github.com/pdiddy/street-eras/pkg/types"
)

// Source is the knowledge-source collaborator contract. Lookup returns the
// article plain text for a title, or one of: ErrNotFound (terminal),
// *AmbiguousError (recoverable via disambiguation), *TransientError
// (recoverable via retry). The three must stay distinguishable; they drive
// divergent policies.
type Source interface {
	Lookup(ctx context.Context, title string) (string, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, title string) (string, error)

func (f SourceFunc) Lookup(ctx context.Context, title string) (string, error) {
	return f(ctx, title)
}

// SkipReason explains why a street ended without a record.
type SkipReason string

const (
	SkipNone            SkipReason = ""
	SkipNoArticle       SkipReason = "no-article"
	SkipNoEra           SkipReason = "no-era-token"
	SkipRetryExhausted  SkipReason = "retries-exhausted"
	SkipAmbiguityBudget SkipReason = "disambiguation-exhausted"
)

// Outcome is the terminal result for one street. Exactly one of Record,
// Skip, or Err is meaningful: Record on success, Skip for an expected
// permanent skip, Err for an internal defect (malformed century label
// reaching the classifier).
type Outcome struct {
	Query  types.StreetQuery
	Record *types.StreetEraRecord
	Skip   SkipReason
	Err    error
}

// Resolver runs a street's full lookup chain to its terminal state.
type Resolver struct {
	source Source
	cfg    types.LookupConfig
}

// NewResolver builds a Resolver over the given knowledge source.
func NewResolver(source Source, cfg types.LookupConfig) *Resolver {
	return &Resolver{source: source, cfg: cfg.WithDefaults()}
}

// Resolve carries a street through lookup, disambiguation, extraction, and
// era classification. The retry budget and the disambiguation depth are
// independent counters: every candidate title gets a fresh retry budget.
// Both loops are explicit and bounded, so a cyclic chain of ambiguous
// titles terminates at the depth cap.
func (r *Resolver) Resolve(ctx context.Context, query types.StreetQuery) Outcome {
	out := Outcome{Query: query}
	name := query.Street

	for depth := 0; ; depth++ {
		title := types.StreetQuery{Street: name, City: query.City}.Title()
		text, err := r.lookupWithRetry(ctx, title)

		var amb *AmbiguousError
		switch {
		case err == nil:
			rec := extract.Extract(text)
			if rec.Century == "" {
				out.Skip = SkipNoEra
				return out
			}
			label, eraErr := era.EraOf(rec.Century)
			if eraErr != nil {
				out.Err = eraErr
				return out
			}
			out.Record = &types.StreetEraRecord{Era: label, Context: rec.Context}
			return out

		case errors.Is(err, ErrNotFound):
			out.Skip = SkipNoArticle
			return out

		case errors.As(err, &amb):
			if depth >= r.cfg.MaxDisambiguation || len(amb.Candidates) == 0 {
				out.Skip = SkipAmbiguityBudget
				return out
			}
			name = amb.Candidates[0]

		default:
			out.Skip = SkipRetryExhausted
			return out
		}
	}
}

// lookupWithRetry issues the lookup for one query string, sleeping a
// jittered delay and retrying on transient failures up to the attempt cap.
func (r *Resolver) lookupWithRetry(ctx context.Context, title string) (string, error) {
	for attempt := 0; ; attempt++ {
		text, err := r.source.Lookup(ctx, title)
		if err == nil {
			return text, nil
		}
		var te *TransientError
		if !errors.As(err, &te) {
			return "", err
		}
		if attempt >= r.cfg.MaxRetries {
			return "", err
		}
		if err := r.backoff(ctx); err != nil {
			return "", err
		}
	}
}

// backoff sleeps a uniform-random duration in [BackoffLow, BackoffHigh].
// A zero interval returns immediately, which tests rely on. The sleep is
// interruptible by context cancellation.
func (r *Resolver) backoff(ctx context.Context) error {
	delay := r.cfg.BackoffLow
	if span := r.cfg.BackoffHigh - r.cfg.BackoffLow; span > 0 {
		delay += rand.N(span)
	}
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
