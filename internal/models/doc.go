// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

// Package models defines the display records served by the HTML pages and
// the JSON API. JSON field names are camelCase and stable; clients depend on
// them.
//
// Raw upstream shapes live in the pokeapi subpackage.
package models
