// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokedex

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/uriel2203/interns-pokedex/internal/models"
	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
)

// Display defaults used when species data is missing.
const (
	DefaultDescription = "No description available."
	DefaultGenus       = "Unknown"
	DefaultColor       = "gray"
)

var statNames = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Atk",
	"special-defense": "Sp. Def",
	"speed":           "Speed",
}

// FormatName converts a hyphenated identifier to display form:
// "mr-mime" becomes "Mr Mime". Only the first letter of each word changes.
func FormatName(name string) string {
	// A Caser is stateful, so one is built per call.
	return cases.Title(language.Und, cases.NoLower).String(strings.ReplaceAll(name, "-", " "))
}

// FormatStatName maps the six base stats to their short labels and falls back
// to FormatName for anything else.
func FormatStatName(name string) string {
	if label, ok := statNames[name]; ok {
		return label
	}
	return FormatName(name)
}

// toDisplay merges a Pokemon with its optional species record.
func toDisplay(p *pokeapi.Pokemon, species *pokeapi.PokemonSpecies) *models.DisplayPokemon {
	d := &models.DisplayPokemon{
		ID:            p.ID,
		Name:          p.Name,
		DisplayName:   FormatName(p.Name),
		Image:         imageURL(p),
		Sprite:        deref(p.Sprites.FrontDefault),
		Types:         make([]string, 0, len(p.Types)),
		Height:        float64(p.Height) / 10,
		Weight:        float64(p.Weight) / 10,
		Abilities:     make([]models.Ability, 0, len(p.Abilities)),
		Stats:         make([]models.Stat, 0, len(p.Stats)),
		Description:   DefaultDescription,
		Genus:         DefaultGenus,
		Color:         DefaultColor,
		CaptureRate:   0,
		BaseHappiness: 0,
	}

	for _, t := range p.Types {
		d.Types = append(d.Types, t.Type.Name)
	}
	for _, a := range p.Abilities {
		d.Abilities = append(d.Abilities, models.Ability{
			Name:     FormatName(a.Ability.Name),
			IsHidden: a.IsHidden,
		})
	}
	for _, s := range p.Stats {
		d.Stats = append(d.Stats, models.Stat{
			Name:  FormatStatName(s.Stat.Name),
			Value: s.BaseStat,
		})
	}

	if species == nil {
		return d
	}
	if text, ok := species.EnglishFlavorText(); ok && text != "" {
		d.Description = strings.ReplaceAll(text, "\f", " ")
	}
	if genus, ok := species.EnglishGenus(); ok && genus != "" {
		d.Genus = genus
	}
	if species.Color != nil && species.Color.Name != "" {
		d.Color = species.Color.Name
	}
	d.CaptureRate = species.CaptureRate
	if species.BaseHappiness != nil {
		d.BaseHappiness = *species.BaseHappiness
	}
	return d
}

// imageURL prefers the official artwork and falls back to the default sprite.
func imageURL(p *pokeapi.Pokemon) string {
	if art := deref(p.Sprites.Other.OfficialArtwork.FrontDefault); art != "" {
		return art
	}
	return deref(p.Sprites.FrontDefault)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func speciesKey(id int) string {
	return strconv.Itoa(id)
}
