// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokedex

import (
	"math"

	"github.com/uriel2203/interns-pokedex/internal/models"
)

// normalize clamps page to >= 1 and replaces a non-positive limit with the default.
func (s *Service) normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.opts.DefaultLimit
	}
	return page, limit
}

// offsetFor returns (page-1)*limit, saturating at math.MaxInt so a huge page
// lands past the end instead of wrapping negative.
func offsetFor(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// newPage fills the pagination fields. limit must be positive.
func newPage(items []models.DisplayPokemon, total, page, limit int) *models.PokemonPage {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &models.PokemonPage{
		Pokemon:     items,
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNextPage: offsetFor(page, limit) < total-limit,
		HasPrevPage: page > 1,
	}
}

// window returns items[offset:offset+limit] clamped to the slice bounds.
func window[T any](items []T, offset, limit int) []T {
	if offset < 0 || limit < 1 || offset >= len(items) {
		return items[:0]
	}
	return items[offset : offset+min(limit, len(items)-offset)]
}
