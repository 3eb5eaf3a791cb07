// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

/*
Package metrics provides Prometheus metrics collection and export.

Collectors are registered with the default registry through promauto at
package init, so importing the package is enough to expose them at /metrics:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Upstream PokeAPI:
  - pokeapi_requests_total{operation,status_code}
  - pokeapi_request_duration_seconds{operation}

Aggregation:
  - pokedex_fanout_size{operation}
  - pokedex_fanout_duration_seconds{operation}
  - pokedex_fanout_dropped_total{operation}

Circuit breaker (only populated when the breaker is enabled):
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Endpoint labels use the chi route pattern (for example /api/pokemon/{nameOrId})
so that label cardinality stays bounded.
*/
package metrics
