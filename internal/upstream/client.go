// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/uriel2203/interns-pokedex/internal/logging"
	"github.com/uriel2203/interns-pokedex/internal/metrics"
	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 30 * time.Second

	// DefaultSearchScanLimit is the number of names scanned by a substring search.
	DefaultSearchScanLimit = 1000

	maxErrorBodySize = 64 * 1024
)

// ClientInterface defines the upstream operations used by the aggregation layer.
// Both Client and CircuitBreakerClient implement it.
type ClientInterface interface {
	FetchList(ctx context.Context, limit, offset int) (*pokeapi.ResourceList, error)
	FetchByNameOrID(ctx context.Context, key string) (*pokeapi.Pokemon, error)
	FetchSpecies(ctx context.Context, key string) (*pokeapi.PokemonSpecies, error)
	FetchTypeNames(ctx context.Context) ([]pokeapi.NamedResource, error)
	FetchByType(ctx context.Context, typeName string) ([]pokeapi.NamedResource, error)
	SearchByNameSubstring(ctx context.Context, query string, scanLimit int) (*pokeapi.ResourceList, error)
}

var _ ClientInterface = (*Client)(nil)

// Config configures a Client. Zero values fall back to the package defaults.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	SearchScanLimit int
}

// Client is a stateless PokeAPI client, safe for concurrent use.
type Client struct {
	baseURL         string
	searchScanLimit int
	httpClient      *http.Client
}

// NewClient creates a PokeAPI client.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	scan := cfg.SearchScanLimit
	if scan <= 0 {
		scan = DefaultSearchScanLimit
	}

	return &Client{
		baseURL:         baseURL,
		searchScanLimit: scan,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// getJSON issues GET baseURL+path and decodes a 200 body into out.
// Non-2xx responses come back as *statusError.
func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(op, 0, time.Since(start))
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordUpstreamRequest(op, resp.StatusCode, time.Since(start))

	logging.Ctx(ctx).Debug().
		Str("op", op).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("PokeAPI request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode != http.StatusNotFound {
			logging.Ctx(ctx).Debug().
				Str("op", op).
				Int("status", resp.StatusCode).
				Bytes("body", readBodyForError(resp.Body)).
				Msg("PokeAPI error response")
		}
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readBodyForError reads at most maxErrorBodySize bytes of an error body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// resourcePath builds /collection/{key} with the key lowercased and escaped.
func resourcePath(collection, key string) string {
	return "/" + collection + "/" + url.PathEscape(strings.ToLower(key))
}

func pageQuery(limit, offset int) url.Values {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))
	return q
}
