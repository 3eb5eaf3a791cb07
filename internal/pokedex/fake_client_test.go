// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokedex

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
	"github.com/uriel2203/interns-pokedex/internal/upstream"
)

// fakeClient is an in-memory upstream keyed by lowercase name.
type fakeClient struct {
	mu         sync.Mutex
	pokemon    map[string]*pokeapi.Pokemon
	species    map[int]*pokeapi.PokemonSpecies
	speciesErr error
	order      []string
	types      []pokeapi.NamedResource
	byType     map[string][]pokeapi.NamedResource
	failOn     map[string]error

	calls      atomic.Int32
	inFlight   atomic.Int32
	maxFlight  atomic.Int32
	listCalls  []string
	searchScan int
}

var _ upstream.ClientInterface = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{
		pokemon: make(map[string]*pokeapi.Pokemon),
		species: make(map[int]*pokeapi.PokemonSpecies),
		byType:  make(map[string][]pokeapi.NamedResource),
		failOn:  make(map[string]error),
	}
}

func (f *fakeClient) add(id int, name string) *pokeapi.Pokemon {
	p := &pokeapi.Pokemon{ID: id, Name: name, Height: 7, Weight: 69}
	f.pokemon[name] = p
	f.order = append(f.order, name)
	return p
}

func (f *fakeClient) enter() func() {
	f.calls.Add(1)
	n := f.inFlight.Add(1)
	for {
		m := f.maxFlight.Load()
		if n <= m || f.maxFlight.CompareAndSwap(m, n) {
			break
		}
	}
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeClient) FetchList(_ context.Context, limit, offset int) (*pokeapi.ResourceList, error) {
	defer f.enter()()
	f.mu.Lock()
	f.listCalls = append(f.listCalls, fmt.Sprintf("%d/%d", limit, offset))
	f.mu.Unlock()

	results := make([]pokeapi.NamedResource, 0)
	for i := offset; i >= 0 && i < len(f.order) && i-offset < limit; i++ {
		results = append(results, pokeapi.NamedResource{Name: f.order[i]})
	}
	return &pokeapi.ResourceList{Count: len(f.order), Results: results}, nil
}

func (f *fakeClient) FetchByNameOrID(ctx context.Context, key string) (*pokeapi.Pokemon, error) {
	defer f.enter()()
	key = strings.ToLower(key)
	if err, ok := f.failOn[key]; ok {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p, ok := f.pokemon[key]; ok {
		return p, nil
	}
	if id, err := strconv.Atoi(key); err == nil {
		for _, p := range f.pokemon {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeClient) FetchSpecies(_ context.Context, key string) (*pokeapi.PokemonSpecies, error) {
	defer f.enter()()
	if f.speciesErr != nil {
		return nil, f.speciesErr
	}
	id, _ := strconv.Atoi(key)
	return f.species[id], nil
}

func (f *fakeClient) FetchTypeNames(context.Context) ([]pokeapi.NamedResource, error) {
	defer f.enter()()
	if err, ok := f.failOn["types"]; ok {
		return nil, err
	}
	return f.types, nil
}

func (f *fakeClient) FetchByType(_ context.Context, typeName string) ([]pokeapi.NamedResource, error) {
	defer f.enter()()
	members, ok := f.byType[strings.ToLower(typeName)]
	if !ok {
		return nil, nil
	}
	return members, nil
}

func (f *fakeClient) SearchByNameSubstring(_ context.Context, query string, scanLimit int) (*pokeapi.ResourceList, error) {
	defer f.enter()()
	f.searchScan = scanLimit
	results := make([]pokeapi.NamedResource, 0)
	for _, name := range f.order {
		if strings.Contains(name, strings.ToLower(query)) {
			results = append(results, pokeapi.NamedResource{Name: name})
		}
	}
	return &pokeapi.ResourceList{Count: len(results), Results: results}, nil
}
