// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokeapi

// PokemonSpecies is the raw record returned by GET /pokemon-species/{nameOrId}.
type PokemonSpecies struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	CaptureRate       int               `json:"capture_rate"`
	BaseHappiness     *int              `json:"base_happiness"`
	Color             *NamedResource    `json:"color"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Genera            []Genus           `json:"genera"`
}

// FlavorTextEntry is a localized description.
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// Genus is a localized genus such as "Seed Pokémon".
type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// EnglishFlavorText returns the first English flavor text entry, if any.
func (s *PokemonSpecies) EnglishFlavorText() (string, bool) {
	if s == nil {
		return "", false
	}
	for _, entry := range s.FlavorTextEntries {
		if entry.Language.Name == "en" {
			return entry.FlavorText, true
		}
	}
	return "", false
}

// EnglishGenus returns the first English genus, if any.
func (s *PokemonSpecies) EnglishGenus() (string, bool) {
	if s == nil {
		return "", false
	}
	for _, g := range s.Genera {
		if g.Language.Name == "en" {
			return g.Genus, true
		}
	}
	return "", false
}
