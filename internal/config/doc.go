// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

/*
Package config loads and validates the server configuration.

# Configuration Sources

Values are layered with koanf, later sources overriding earlier ones:
  - Struct defaults (defaultConfig)
  - A YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml, /etc/pokedex/config.yaml
  - Environment variables

# Environment Variables

Upstream:
  - POKEAPI_BASE_URL: PokeAPI root (default: https://pokeapi.co/api/v2)
  - POKEAPI_TIMEOUT: per-request timeout (default: 30s)
  - POKEAPI_CIRCUIT_BREAKER: enable the circuit breaker (default: false)

Pagination:
  - DEFAULT_PAGE_LIMIT: page size when none is given (default: 20)
  - MAX_SEARCH_LIMIT: names scanned by a substring search (default: 1000)
  - SEARCH_RESULT_LIMIT: substring matches resolved to details (default: 20)

Aggregation:
  - FANOUT_MAX_CONCURRENCY: concurrent detail lookups per request (default: 20)

Server:
  - PORT or HTTP_PORT: listen port (default: 3000)
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - NODE_ENV or ENVIRONMENT: development, test, staging, production (default: development)
  - CORS_ORIGINS: comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line (default: false)

# Example YAML

	upstream:
	  base_url: https://pokeapi.co/api/v2
	  timeout: 10s
	pagination:
	  default_limit: 24
	server:
	  port: 8080
	  cors_origins: ["https://pokedex.example.com"]
*/
package config
