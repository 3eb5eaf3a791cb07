// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

/*
Command server runs the Pokedex: a browsable HTML catalogue and a JSON API
built on demand from PokeAPI. Nothing is stored locally; every request is
answered by fetching and aggregating upstream records.

# Startup

The server initializes components in the following order:

 1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
 2. Logging: zerolog level and format from configuration
 3. Upstream client: PokeAPI HTTP client, optionally behind a circuit breaker
 4. Aggregation service: bounded fan-out of detail lookups
 5. Views and router: embedded templates, chi routes and middleware
 6. Supervisor tree: the HTTP server runs as a suture service

With ENVIRONMENT=test (or NODE_ENV=test) the handler is built but no listener
is started.

# Configuration

Common environment variables:

	PORT=3000                          listen port
	POKEAPI_BASE_URL=https://pokeapi.co/api/v2
	POKEAPI_TIMEOUT=30s                per-request upstream timeout
	POKEAPI_CIRCUIT_BREAKER=true       trip on sustained upstream failure
	DEFAULT_PAGE_LIMIT=20
	FANOUT_MAX_CONCURRENCY=20          parallel detail lookups per request
	LOG_LEVEL=info LOG_FORMAT=json

See internal/config for the full list and the YAML layout.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and waits for in-flight requests before the process exits.
*/
package main
