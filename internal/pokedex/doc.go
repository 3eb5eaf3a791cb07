// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

/*
Package pokedex turns raw PokeAPI records into display-ready pages.

The Service composes the upstream client into the five operations exposed by
the HTTP layer: GetDetails, ListPage, Search, ListTypes and ListByType.

# Absent results

A nil result with a nil error means "not found". The HTTP layer maps it to
404. Listings silently drop entries whose detail lookup comes back absent, so
a page may hold fewer items than its limit while TotalCount still reports the
upstream count.

# Fan-out

Listings resolve each entry with GetDetails concurrently through an errgroup
bounded by Options.MaxConcurrency. Output order always matches the upstream
order. The first failure cancels the remaining lookups and fails the whole
call.

# Species enrichment

Species data (description, genus, color, capture rate, base happiness) is best
effort. Any species error is logged at debug level and the documented
defaults are used instead.
*/
package pokedex
