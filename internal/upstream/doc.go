// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

/*
Package upstream implements the HTTP client for the public PokeAPI service.

# Absent versus failure

Lookups by key distinguish two outcomes that callers must treat differently:

  - Absent: the upstream answered 404. FetchByNameOrID, FetchSpecies and
    FetchByType return (nil, nil).
  - Failure: anything else (transport error, non-2xx status, undecodable
    body). Every failure is returned as *Error, whose message is the
    "Failed to fetch ..." text surfaced to API clients.

Listing operations (FetchList, FetchTypeNames, SearchByNameSubstring) have no
Absent outcome; a 404 there is a failure.

# Circuit breaker

CircuitBreakerClient wraps Client with sony/gobreaker. It is off by default
(upstream.circuit_breaker). Absent results count as successes so that a run of
unknown names cannot open the circuit.

# Usage

	client := upstream.NewClient(upstream.Config{
		BaseURL: "https://pokeapi.co/api/v2",
		Timeout: 30 * time.Second,
	})
	p, err := client.FetchByNameOrID(ctx, "Pikachu")
	if err != nil {
		return err
	}
	if p == nil {
		// not found
	}
*/
package upstream
