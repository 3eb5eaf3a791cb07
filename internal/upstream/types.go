// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package upstream

import (
	"context"

	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
)

// FetchTypeNames returns every type the upstream knows, unfiltered.
func (c *Client) FetchTypeNames(ctx context.Context) ([]pokeapi.NamedResource, error) {
	var list pokeapi.TypeList
	if err := c.getJSON(ctx, OpListTypes, "/type", nil, &list); err != nil {
		return nil, newError(OpListTypes, err)
	}
	if list.Results == nil {
		return []pokeapi.NamedResource{}, nil
	}
	return list.Results, nil
}

// FetchByType returns the full membership list of a type in upstream order,
// or nil when the type does not exist.
func (c *Client) FetchByType(ctx context.Context, typeName string) ([]pokeapi.NamedResource, error) {
	if typeName == "" {
		return nil, nil
	}
	var detail pokeapi.TypeDetail
	if err := c.getJSON(ctx, OpFetchByType, resourcePath("type", typeName), nil, &detail); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, newError(OpFetchByType, err)
	}
	return detail.Members(), nil
}
