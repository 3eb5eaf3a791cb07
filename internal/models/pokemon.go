// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package models

// DisplayPokemon is the display-ready projection of an upstream Pokemon merged
// with its optional species record. Values are immutable once built.
//
// Example JSON:
//
//	{
//	  "id": 25,
//	  "name": "pikachu",
//	  "displayName": "Pikachu",
//	  "image": "https://.../official-artwork/25.png",
//	  "sprite": "https://.../25.png",
//	  "types": ["electric"],
//	  "height": 0.4,
//	  "weight": 6,
//	  "abilities": [{"name": "Static", "isHidden": false}],
//	  "stats": [{"name": "HP", "value": 35}],
//	  "description": "When several of these POKéMON gather...",
//	  "genus": "Mouse Pokémon",
//	  "color": "yellow",
//	  "captureRate": 190,
//	  "baseHappiness": 50
//	}
type DisplayPokemon struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	DisplayName   string    `json:"displayName"`
	Image         string    `json:"image"`
	Sprite        string    `json:"sprite"`
	Types         []string  `json:"types"`
	Height        float64   `json:"height"` // meters
	Weight        float64   `json:"weight"` // kilograms
	Abilities     []Ability `json:"abilities"`
	Stats         []Stat    `json:"stats"`
	Description   string    `json:"description"`
	Genus         string    `json:"genus"`
	Color         string    `json:"color"`
	CaptureRate   int       `json:"captureRate"`
	BaseHappiness int       `json:"baseHappiness"`
}

// Ability is a formatted ability name with its hidden flag.
type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"isHidden"`
}

// Stat is a formatted stat label with its base value.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TypeTag is a listable type with its display name.
type TypeTag struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// PokemonPage is one page of display records plus pagination state.
//
// Invariants:
//   - HasNextPage == (offset+limit < TotalCount) where offset = (CurrentPage-1)*limit
//   - HasPrevPage == (CurrentPage > 1)
//   - TotalPages == ceil(TotalCount/limit)
type PokemonPage struct {
	Pokemon     []DisplayPokemon `json:"pokemon"`
	Type        string           `json:"type,omitempty"`
	TotalCount  int              `json:"totalCount"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	HasNextPage bool             `json:"hasNextPage"`
	HasPrevPage bool             `json:"hasPrevPage"`
}

// SearchResult is a single-shot search response.
//
// TotalCount reports the number of name matches found by the substring scan,
// which can exceed len(Pokemon): results are truncated before detail lookup
// and records that vanish upstream are dropped.
type SearchResult struct {
	Pokemon    []DisplayPokemon `json:"pokemon"`
	TotalCount int              `json:"totalCount"`
}
