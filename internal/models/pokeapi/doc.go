// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

// Package pokeapi defines the raw response models of the upstream PokeAPI
// service. Field names follow the upstream JSON exactly; display shaping
// happens in the pokedex package.
package pokeapi
