// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package upstream

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/uriel2203/interns-pokedex/internal/logging"
	"github.com/uriel2203/interns-pokedex/internal/metrics"
	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
)

const breakerName = "pokeapi"

// CircuitBreakerClient wraps a ClientInterface with the circuit breaker pattern.
//
// Settings:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
//
// Absent results are successes. A rejected call surfaces as *Error carrying
// gobreaker.ErrOpenState or gobreaker.ErrTooManyRequests.
type CircuitBreakerClient struct {
	client ClientInterface
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

var _ ClientInterface = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps client.
func NewCircuitBreakerClient(client ClientInterface) *CircuitBreakerClient {
	return newCircuitBreakerClient(client, gobreaker.Settings{
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
	})
}

func newCircuitBreakerClient(client ClientInterface, settings gobreaker.Settings) *CircuitBreakerClient {
	settings.Name = breakerName

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	if settings.ReadyToTrip == nil {
		settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		}
	}

	settings.OnStateChange = func(name string, from, to gobreaker.State) {
		fromStr := stateToString(from)
		toStr := stateToString(to)

		logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

		metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		if to == gobreaker.StateClosed {
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
		}
	}

	return &CircuitBreakerClient{
		client: client,
		cb:     gobreaker.NewCircuitBreaker[any](settings),
		name:   breakerName,
	}
}

// State reports the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// execute runs fn under the breaker. Rejections are wrapped as *Error for op.
func execute[T any](cbc *CircuitBreakerClient, op string, fn func() (T, error)) (T, error) {
	var zero T

	result, err := cbc.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Str("op", op).Msg("[CIRCUIT BREAKER] Request rejected")
			return zero, newError(op, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	typed, ok := result.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// FetchList with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchList(ctx context.Context, limit, offset int) (*pokeapi.ResourceList, error) {
	return execute(cbc, OpListPokemon, func() (*pokeapi.ResourceList, error) {
		return cbc.client.FetchList(ctx, limit, offset)
	})
}

// FetchByNameOrID with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchByNameOrID(ctx context.Context, key string) (*pokeapi.Pokemon, error) {
	return execute(cbc, OpFetchPokemon, func() (*pokeapi.Pokemon, error) {
		return cbc.client.FetchByNameOrID(ctx, key)
	})
}

// FetchSpecies with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchSpecies(ctx context.Context, key string) (*pokeapi.PokemonSpecies, error) {
	return execute(cbc, OpFetchSpecies, func() (*pokeapi.PokemonSpecies, error) {
		return cbc.client.FetchSpecies(ctx, key)
	})
}

// FetchTypeNames with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchTypeNames(ctx context.Context) ([]pokeapi.NamedResource, error) {
	return execute(cbc, OpListTypes, func() ([]pokeapi.NamedResource, error) {
		return cbc.client.FetchTypeNames(ctx)
	})
}

// FetchByType with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchByType(ctx context.Context, typeName string) ([]pokeapi.NamedResource, error) {
	return execute(cbc, OpFetchByType, func() ([]pokeapi.NamedResource, error) {
		return cbc.client.FetchByType(ctx, typeName)
	})
}

// SearchByNameSubstring with circuit breaker protection
func (cbc *CircuitBreakerClient) SearchByNameSubstring(ctx context.Context, query string, scanLimit int) (*pokeapi.ResourceList, error) {
	return execute(cbc, OpSearchPokemon, func() (*pokeapi.ResourceList, error) {
		return cbc.client.SearchByNameSubstring(ctx, query, scanLimit)
	})
}
