// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokedex

import (
	"context"
	"strings"

	"github.com/uriel2203/interns-pokedex/internal/logging"
	"github.com/uriel2203/interns-pokedex/internal/models"
	"github.com/uriel2203/interns-pokedex/internal/upstream"
)

// Defaults applied by NewService for zero-valued Options.
const (
	DefaultPageLimit         = 20
	DefaultSearchResultLimit = 20
	DefaultMaxConcurrency    = 20
)

// hiddenTypes never appear in type listings.
var hiddenTypes = map[string]bool{
	"unknown": true,
	"shadow":  true,
}

// Options tunes a Service.
type Options struct {
	// DefaultLimit replaces a missing or non-positive page size.
	DefaultLimit int

	// SearchScanLimit is the number of names scanned by a substring search.
	// Zero lets the client use its own ceiling.
	SearchScanLimit int

	// SearchResultLimit caps how many substring matches are resolved.
	SearchResultLimit int

	// MaxConcurrency bounds in-flight detail lookups per call. Negative means unbounded.
	MaxConcurrency int
}

// Service aggregates upstream records into display pages.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	client upstream.ClientInterface
	opts   Options
}

// NewService creates a Service over client.
func NewService(client upstream.ClientInterface, opts Options) *Service {
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = DefaultPageLimit
	}
	if opts.SearchResultLimit < 1 {
		opts.SearchResultLimit = DefaultSearchResultLimit
	}
	if opts.MaxConcurrency == 0 {
		opts.MaxConcurrency = DefaultMaxConcurrency
	}
	return &Service{client: client, opts: opts}
}

// DefaultLimit returns the page size used when a caller gives none.
func (s *Service) DefaultLimit() int {
	return s.opts.DefaultLimit
}

// GetDetails returns the display record for a name or numeric id, or nil when
// no such Pokemon exists. Species lookup failures never fail the call.
func (s *Service) GetDetails(ctx context.Context, nameOrID string) (*models.DisplayPokemon, error) {
	p, err := s.client.FetchByNameOrID(ctx, nameOrID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	species, err := s.client.FetchSpecies(ctx, speciesKey(p.ID))
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Int("id", p.ID).Msg("Species lookup failed, using defaults")
		species = nil
	}

	return toDisplay(p, species), nil
}

// ListPage returns one page of the global Pokemon list.
func (s *Service) ListPage(ctx context.Context, page, limit int) (*models.PokemonPage, error) {
	page, limit = s.normalize(page, limit)

	list, err := s.client.FetchList(ctx, limit, offsetFor(page, limit))
	if err != nil {
		return nil, err
	}

	items, err := s.detailsFor(ctx, "list", list.Results)
	if err != nil {
		return nil, err
	}
	return newPage(items, list.Count, page, limit), nil
}

// Search resolves query as an exact name or id first, then falls back to a
// substring scan. A blank query returns an empty result without any upstream
// call.
func (s *Service) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &models.SearchResult{Pokemon: []models.DisplayPokemon{}}, nil
	}

	exact, err := s.GetDetails(ctx, query)
	if err != nil {
		return nil, err
	}
	if exact != nil {
		return &models.SearchResult{
			Pokemon:    []models.DisplayPokemon{*exact},
			TotalCount: 1,
		}, nil
	}

	matches, err := s.client.SearchByNameSubstring(ctx, query, s.opts.SearchScanLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.detailsFor(ctx, "search", window(matches.Results, 0, s.opts.SearchResultLimit))
	if err != nil {
		return nil, err
	}
	return &models.SearchResult{
		Pokemon:    items,
		TotalCount: matches.Count,
	}, nil
}

// ListTypes returns the browsable types in upstream order.
func (s *Service) ListTypes(ctx context.Context) ([]models.TypeTag, error) {
	names, err := s.client.FetchTypeNames(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]models.TypeTag, 0, len(names))
	for _, n := range names {
		if hiddenTypes[n.Name] {
			continue
		}
		tags = append(tags, models.TypeTag{Name: n.Name, DisplayName: FormatName(n.Name)})
	}
	return tags, nil
}

// ListByType returns one page of a type's members, or nil when the type does
// not exist. The upstream returns the whole membership at once, so paging
// happens here.
func (s *Service) ListByType(ctx context.Context, typeName string, page, limit int) (*models.PokemonPage, error) {
	page, limit = s.normalize(page, limit)

	members, err := s.client.FetchByType(ctx, typeName)
	if err != nil {
		return nil, err
	}
	if members == nil {
		return nil, nil
	}

	items, err := s.detailsFor(ctx, "type", window(members, offsetFor(page, limit), limit))
	if err != nil {
		return nil, err
	}

	result := newPage(items, len(members), page, limit)
	result.Type = typeName
	return result, nil
}
