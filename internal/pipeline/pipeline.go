// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline fans a street-name list out across a bounded worker
// pool and aggregates per-street classifications into the result mapping.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/street-eras/internal/lookup"
	"github.com/pdiddy/street-eras/pkg/types"
)

// Resolver is the per-street resolution collaborator. *lookup.Resolver
// implements it; tests supply deterministic fakes.
type Resolver interface {
	Resolve(ctx context.Context, query types.StreetQuery) lookup.Outcome
}

// Summary holds the outcome counts of one pipeline run.
type Summary struct {
	Classified      int
	NoArticle       int
	NoEra           int
	RetriesExceeded int
	DepthExceeded   int
	Failed          int

	// Truncated is how many input streets fell beyond the configured
	// limit and were never submitted.
	Truncated int
}

// Total returns the number of streets that reached a terminal state.
func (s Summary) Total() int {
	return s.Classified + s.NoArticle + s.NoEra + s.RetriesExceeded + s.DepthExceeded + s.Failed
}

// HasFailures reports whether any street hit an internal defect.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run classifies streets of one city in parallel. The input list is
// truncated to cfg.Limit before submission; cfg.Workers goroutines each
// carry one street's full retry/disambiguation chain to completion before
// taking the next. Results are collected in completion order, but the
// mapping is keyed by street name, so completion order never shows in the
// output. Progress and per-street status go to w, one line per terminal
// outcome.
func Run(ctx context.Context, resolver Resolver, streets []string, city string, cfg types.PipelineConfig, w io.Writer) (types.ResultMapping, Summary) {
	cfg = cfg.WithDefaults()

	var summary Summary
	if len(streets) > cfg.Limit {
		summary.Truncated = len(streets) - cfg.Limit
		streets = streets[:cfg.Limit]
	}

	total := len(streets)
	mapping := make(types.ResultMapping, total)

	jobs := make(chan string)
	done := make(chan lookup.Outcome, cfg.Workers)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for street := range jobs {
				done <- resolver.Resolve(ctx, types.StreetQuery{Street: street, City: city})
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, street := range streets {
			jobs <- street
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	// Single collector goroutine: the mapping and the writer are touched
	// here only, so workers share no mutable state.
	completed := 0
	for out := range done {
		completed++
		switch {
		case out.Err != nil:
			summary.Failed++
			fmt.Fprintf(w, "failed     %s: %v\n", out.Query.Street, out.Err)
		case out.Record != nil:
			summary.Classified++
			mapping[out.Query.Street] = *out.Record
			fmt.Fprintf(w, "classified %s: %s\n", out.Query.Street, out.Record.Era)
		default:
			countSkip(&summary, out.Skip)
			fmt.Fprintf(w, "skipped    %s (%s)\n", out.Query.Street, out.Skip)
		}
		fmt.Fprintf(w, "processed %d/%d\n", completed, total)
	}

	fmt.Fprintf(w, "\nRun summary: %d classified, %d no article, %d no era token, %d retries exhausted, %d disambiguation exhausted, %d failed (total: %d)\n",
		summary.Classified, summary.NoArticle, summary.NoEra,
		summary.RetriesExceeded, summary.DepthExceeded, summary.Failed, summary.Total())
	if summary.Truncated > 0 {
		fmt.Fprintf(w, "%d street(s) beyond the limit of %d were not submitted\n", summary.Truncated, cfg.Limit)
	}

	return mapping, summary
}

func countSkip(s *Summary, reason lookup.SkipReason) {
	switch reason {
	case lookup.SkipNoArticle:
		s.NoArticle++
	case lookup.SkipNoEra:
		s.NoEra++
	case lookup.SkipRetryExhausted:
		s.RetriesExceeded++
	case lookup.SkipAmbiguityBudget:
		s.DepthExceeded++
	}
}
