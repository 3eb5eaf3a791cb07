// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Operation names. They double as metric labels.
const (
	OpListPokemon   = "list_pokemon"
	OpFetchPokemon  = "fetch_pokemon"
	OpFetchSpecies  = "fetch_species"
	OpSearchPokemon = "search_pokemon"
	OpListTypes     = "list_types"
	OpFetchByType   = "fetch_by_type"
)

var opMessages = map[string]string{
	OpListPokemon:   "Failed to fetch Pokemon list",
	OpFetchPokemon:  "Failed to fetch Pokemon",
	OpFetchSpecies:  "Failed to fetch Pokemon species",
	OpSearchPokemon: "Failed to search Pokemon",
	OpListTypes:     "Failed to fetch Pokemon types",
	OpFetchByType:   "Failed to fetch Pokemon by type",
}

// Error is returned for every upstream failure.
// StatusCode is 0 when no HTTP response was received.
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	prefix, ok := opMessages[e.Op]
	if !ok {
		prefix = "Failed to call PokeAPI"
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusError reports a non-2xx upstream response.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.code)
}

func newError(op string, err error) *Error {
	ue := &Error{Op: op, Err: err}
	var se *statusError
	if errors.As(err, &se) {
		ue.StatusCode = se.code
	}
	return ue
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}
