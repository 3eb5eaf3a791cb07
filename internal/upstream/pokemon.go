// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package upstream

import (
	"context"
	"strings"

	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
)

// FetchList returns one window of the Pokemon name list.
func (c *Client) FetchList(ctx context.Context, limit, offset int) (*pokeapi.ResourceList, error) {
	var list pokeapi.ResourceList
	if err := c.getJSON(ctx, OpListPokemon, "/pokemon", pageQuery(limit, offset), &list); err != nil {
		return nil, newError(OpListPokemon, err)
	}
	return &list, nil
}

// FetchByNameOrID returns the full record, or nil when the upstream has no
// Pokemon for key. Names are case-insensitive.
func (c *Client) FetchByNameOrID(ctx context.Context, key string) (*pokeapi.Pokemon, error) {
	if key == "" {
		return nil, nil
	}
	var p pokeapi.Pokemon
	if err := c.getJSON(ctx, OpFetchPokemon, resourcePath("pokemon", key), nil, &p); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, newError(OpFetchPokemon, err)
	}
	return &p, nil
}

// FetchSpecies returns the species record, or nil when it does not exist.
func (c *Client) FetchSpecies(ctx context.Context, key string) (*pokeapi.PokemonSpecies, error) {
	if key == "" {
		return nil, nil
	}
	var s pokeapi.PokemonSpecies
	if err := c.getJSON(ctx, OpFetchSpecies, resourcePath("pokemon-species", key), nil, &s); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, newError(OpFetchSpecies, err)
	}
	return &s, nil
}

// SearchByNameSubstring scans the first scanLimit names (the configured
// ceiling when scanLimit <= 0) and keeps those containing query,
// case-insensitively. Count is the number of matches. Names beyond the scan
// window are never considered.
func (c *Client) SearchByNameSubstring(ctx context.Context, query string, scanLimit int) (*pokeapi.ResourceList, error) {
	if scanLimit <= 0 {
		scanLimit = c.searchScanLimit
	}

	var list pokeapi.ResourceList
	if err := c.getJSON(ctx, OpSearchPokemon, "/pokemon", pageQuery(scanLimit, 0), &list); err != nil {
		return nil, newError(OpSearchPokemon, err)
	}

	needle := strings.ToLower(query)
	matches := make([]pokeapi.NamedResource, 0)
	for _, r := range list.Results {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matches = append(matches, r)
		}
	}

	return &pokeapi.ResourceList{
		Count:   len(matches),
		Results: matches,
	}, nil
}
