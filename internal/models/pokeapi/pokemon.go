// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokeapi

// NamedResource is a reference to another upstream resource.
// List endpoints only return these, never the full record.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ResourceList is the paginated envelope returned by GET /pokemon.
type ResourceList struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next,omitempty"`
	Previous *string         `json:"previous,omitempty"`
	Results  []NamedResource `json:"results"`
}

// Pokemon is the raw record returned by GET /pokemon/{nameOrId}.
// Only the fields the aggregation layer reads are decoded.
type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"` // decimeters
	Weight    int              `json:"weight"` // hectograms
	Sprites   Sprites          `json:"sprites"`
	Types     []PokemonType    `json:"types"`
	Abilities []PokemonAbility `json:"abilities"`
	Stats     []PokemonStat    `json:"stats"`
}

// Sprites holds the image URIs for a Pokemon. Any of them may be null upstream.
type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds the alternative artwork sets.
type OtherSprites struct {
	OfficialArtwork Artwork `json:"official-artwork"`
}

// Artwork is a single artwork set.
type Artwork struct {
	FrontDefault *string `json:"front_default"`
}

// PokemonType is a slot/type pair.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonAbility is an ability reference with its hidden flag.
type PokemonAbility struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// PokemonStat is a base stat value.
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}
