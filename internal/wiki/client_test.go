// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/street-eras/internal/lookup"
	"github.com/pdiddy/street-eras/pkg/types"
)

func testConfig() types.LookupConfig {
	return types.LookupConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   2 * time.Second,
			UserAgent: "street-eras-test/0.1",
		},
	}
}

// withServer points apiBase at a test server for the duration of the test.
func withServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := apiBase
	apiBase = ts.URL
	t.Cleanup(func() { apiBase = old })

	return NewClient(testConfig())
}

func TestLookup_Found(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "street-eras-test/0.1", r.Header.Get("User-Agent"))
		assert.Equal(t, "High Street, Oxford", r.URL.Query().Get("titles"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"query":{"pages":[
			{"pageid":1,"title":"High Street, Oxford","extract":"The street dates from the 12th century."}
		]}}`)
	})

	text, err := c.Lookup(context.Background(), "High Street, Oxford")
	require.NoError(t, err)
	assert.Equal(t, "The street dates from the 12th century.", text)
}

func TestLookup_Missing(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"query":{"pages":[
			{"title":"Nowhere Lane, Oxford","missing":true}
		]}}`)
	})

	_, err := c.Lookup(context.Background(), "Nowhere Lane, Oxford")
	assert.ErrorIs(t, err, lookup.ErrNotFound)
}

func TestLookup_Disambiguation(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("prop") {
		case "extracts|pageprops":
			fmt.Fprint(w, `{"query":{"pages":[
				{"pageid":2,"title":"Mill Lane","pageprops":{"disambiguation":""}}
			]}}`)
		case "links":
			assert.Equal(t, "Mill Lane", r.URL.Query().Get("titles"))
			assert.Equal(t, "0", r.URL.Query().Get("plnamespace"))
			fmt.Fprint(w, `{"query":{"pages":[
				{"pageid":2,"title":"Mill Lane","links":[
					{"title":"Mill Lane, Cambridge"},
					{"title":"Mill Lane, Oxford"}
				]}
			]}}`)
		default:
			t.Errorf("unexpected prop %q", r.URL.Query().Get("prop"))
		}
	})

	_, err := c.Lookup(context.Background(), "Mill Lane")
	var amb *lookup.AmbiguousError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, "Mill Lane", amb.Title)
	assert.Equal(t, []string{"Mill Lane, Cambridge", "Mill Lane, Oxford"}, amb.Candidates)
}

func TestLookup_ServerErrorIsTransient(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Lookup(context.Background(), "High Street, Oxford")
	var te *lookup.TransientError
	assert.ErrorAs(t, err, &te)
}

func TestLookup_RateLimitedIsTransient(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Lookup(context.Background(), "High Street, Oxford")
	var te *lookup.TransientError
	assert.ErrorAs(t, err, &te)
}

func TestLookup_MalformedBodyIsTransient(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	})

	_, err := c.Lookup(context.Background(), "High Street, Oxford")
	var te *lookup.TransientError
	assert.ErrorAs(t, err, &te)
}

func TestLookup_EmptyPages(t *testing.T) {
	c := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":[]}}`)
	})

	_, err := c.Lookup(context.Background(), "High Street, Oxford")
	assert.ErrorIs(t, err, lookup.ErrNotFound)
}

func TestNewClient_RateLimiter(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 2
	assert.NotNil(t, NewClient(cfg).limiter)

	cfg.RateLimitRPS = 0
	assert.Nil(t, NewClient(cfg).limiter)
}
