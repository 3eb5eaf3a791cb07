// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokedex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func newTestService(f *fakeClient) *Service {
	return NewService(f, Options{})
}

func TestNewServiceDefaults(t *testing.T) {
	s := NewService(newFakeClient(), Options{})
	if s.opts.DefaultLimit != DefaultPageLimit {
		t.Errorf("DefaultLimit: expected %d, got %d", DefaultPageLimit, s.opts.DefaultLimit)
	}
	if s.opts.SearchResultLimit != DefaultSearchResultLimit {
		t.Errorf("SearchResultLimit: expected %d, got %d", DefaultSearchResultLimit, s.opts.SearchResultLimit)
	}
	if s.opts.MaxConcurrency != DefaultMaxConcurrency {
		t.Errorf("MaxConcurrency: expected %d, got %d", DefaultMaxConcurrency, s.opts.MaxConcurrency)
	}
}

func TestGetDetails(t *testing.T) {
	f := newFakeClient()
	p := f.add(1, "bulbasaur")
	p.Sprites.FrontDefault = strPtr("https://img/sprite/1.png")
	p.Sprites.Other.OfficialArtwork.FrontDefault = strPtr("https://img/art/1.png")
	p.Types = []pokeapi.PokemonType{
		{Slot: 1, Type: pokeapi.NamedResource{Name: "grass"}},
		{Slot: 2, Type: pokeapi.NamedResource{Name: "poison"}},
	}
	p.Abilities = []pokeapi.PokemonAbility{
		{Ability: pokeapi.NamedResource{Name: "overgrow"}},
		{Ability: pokeapi.NamedResource{Name: "chlorophyll"}, IsHidden: true},
	}
	p.Stats = []pokeapi.PokemonStat{
		{BaseStat: 45, Stat: pokeapi.NamedResource{Name: "hp"}},
		{BaseStat: 65, Stat: pokeapi.NamedResource{Name: "special-attack"}},
	}
	f.species[1] = &pokeapi.PokemonSpecies{
		ID:            1,
		CaptureRate:   45,
		BaseHappiness: intPtr(50),
		Color:         &pokeapi.NamedResource{Name: "green"},
		FlavorTextEntries: []pokeapi.FlavorTextEntry{
			{FlavorText: "Une graine", Language: pokeapi.NamedResource{Name: "fr"}},
			{FlavorText: "A strange seed was\fplanted", Language: pokeapi.NamedResource{Name: "en"}},
		},
		Genera: []pokeapi.Genus{{Genus: "Seed Pokémon", Language: pokeapi.NamedResource{Name: "en"}}},
	}

	d, err := newTestService(f).GetDetails(context.Background(), "Bulbasaur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == nil {
		t.Fatal("expected details, got nil")
	}

	checks := []struct {
		field     string
		got, want any
	}{
		{"ID", d.ID, 1},
		{"Name", d.Name, "bulbasaur"},
		{"DisplayName", d.DisplayName, "Bulbasaur"},
		{"Image", d.Image, "https://img/art/1.png"},
		{"Sprite", d.Sprite, "https://img/sprite/1.png"},
		{"Height", d.Height, 0.7},
		{"Weight", d.Weight, 6.9},
		{"Types", fmt.Sprint(d.Types), "[grass poison]"},
		{"Ability[1]", d.Abilities[1].Name, "Chlorophyll"},
		{"Ability[1].IsHidden", d.Abilities[1].IsHidden, true},
		{"Stat[0]", d.Stats[0].Name, "HP"},
		{"Stat[1]", d.Stats[1].Name, "Sp. Atk"},
		{"Stat[1].Value", d.Stats[1].Value, 65},
		{"Description", d.Description, "A strange seed was planted"},
		{"Genus", d.Genus, "Seed Pokémon"},
		{"Color", d.Color, "green"},
		{"CaptureRate", d.CaptureRate, 45},
		{"BaseHappiness", d.BaseHappiness, 50},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.field, c.want, c.got)
		}
	}
}

func TestGetDetailsAbsent(t *testing.T) {
	d, err := newTestService(newFakeClient()).GetDetails(context.Background(), "missingno")
	if err != nil {
		t.Fatalf("absent lookup must not error: %v", err)
	}
	if d != nil {
		t.Errorf("expected nil, got %+v", d)
	}
}

func TestGetDetailsPropagatesUpstreamError(t *testing.T) {
	f := newFakeClient()
	boom := errors.New("Failed to fetch Pokemon: request failed with status code 500")
	f.failOn["pikachu"] = boom

	_, err := newTestService(f).GetDetails(context.Background(), "pikachu")
	if !errors.Is(err, boom) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestGetDetailsSpeciesFallback(t *testing.T) {
	blankEnglish := &pokeapi.PokemonSpecies{
		ID:                25,
		FlavorTextEntries: []pokeapi.FlavorTextEntry{{Language: pokeapi.NamedResource{Name: "en"}}},
		Genera:            []pokeapi.Genus{{Language: pokeapi.NamedResource{Name: "en"}}},
	}

	tests := []struct {
		name       string
		species    *pokeapi.PokemonSpecies
		speciesErr error
	}{
		{"species absent", nil, nil},
		{"species error", nil, errors.New("Failed to fetch Pokemon species: timeout")},
		{"blank english entries", blankEnglish, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeClient()
			f.add(25, "pikachu")
			f.species[25] = tt.species
			f.speciesErr = tt.speciesErr

			d, err := newTestService(f).GetDetails(context.Background(), "pikachu")
			if err != nil {
				t.Fatalf("species problems must not fail the lookup: %v", err)
			}
			if d == nil {
				t.Fatal("expected details, got nil")
			}
			if d.Description != "No description available." {
				t.Errorf("Description: got %q", d.Description)
			}
			if d.Genus != "Unknown" {
				t.Errorf("Genus: got %q", d.Genus)
			}
			if d.Color != "gray" {
				t.Errorf("Color: got %q", d.Color)
			}
			if d.CaptureRate != 0 || d.BaseHappiness != 0 {
				t.Errorf("expected zero rates, got %d/%d", d.CaptureRate, d.BaseHappiness)
			}
		})
	}
}

func TestGetDetailsImageFallsBackToSprite(t *testing.T) {
	f := newFakeClient()
	p := f.add(132, "ditto")
	p.Sprites.FrontDefault = strPtr("https://img/sprite/132.png")

	d, err := newTestService(f).GetDetails(context.Background(), "ditto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Image != "https://img/sprite/132.png" {
		t.Errorf("Image: expected sprite fallback, got %q", d.Image)
	}
	if d.Types == nil || d.Abilities == nil || d.Stats == nil {
		t.Error("collections should be empty, not nil")
	}
}

func TestListPagePagination(t *testing.T) {
	f := newFakeClient()
	for i := 1; i <= 45; i++ {
		f.add(i, fmt.Sprintf("mon-%02d", i))
	}
	s := newTestService(f)

	tests := []struct {
		page, limit                    int
		wantItems, wantPage, wantPages int
		wantNext, wantPrev             bool
		wantFirst                      string
	}{
		{1, 20, 20, 1, 3, true, false, "mon-01"},
		{2, 20, 20, 2, 3, true, true, "mon-21"},
		{3, 20, 5, 3, 3, false, true, "mon-41"},
		{4, 20, 0, 4, 3, false, true, ""},
		{0, 0, 20, 1, 3, true, false, "mon-01"},
		{-5, 45, 45, 1, 1, false, false, "mon-01"},
		{math.MaxInt, 20, 0, math.MaxInt, 3, false, true, ""},
		{1, math.MaxInt, 45, 1, 1, false, false, "mon-01"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%d,limit=%d", tt.page, tt.limit), func(t *testing.T) {
			res, err := s.ListPage(context.Background(), tt.page, tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Pokemon) != tt.wantItems {
				t.Errorf("items: expected %d, got %d", tt.wantItems, len(res.Pokemon))
			}
			if res.TotalCount != 45 {
				t.Errorf("TotalCount: expected 45, got %d", res.TotalCount)
			}
			if res.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage: expected %d, got %d", tt.wantPage, res.CurrentPage)
			}
			if res.TotalPages != tt.wantPages {
				t.Errorf("TotalPages: expected %d, got %d", tt.wantPages, res.TotalPages)
			}
			if res.HasNextPage != tt.wantNext {
				t.Errorf("HasNextPage: expected %v, got %v", tt.wantNext, res.HasNextPage)
			}
			if res.HasPrevPage != tt.wantPrev {
				t.Errorf("HasPrevPage: expected %v, got %v", tt.wantPrev, res.HasPrevPage)
			}
			if tt.wantFirst != "" && res.Pokemon[0].Name != tt.wantFirst {
				t.Errorf("first: expected %s, got %s", tt.wantFirst, res.Pokemon[0].Name)
			}
			if res.Pokemon == nil {
				t.Error("Pokemon should never be nil")
			}
		})
	}
}

func TestListPageKeepsOrderAndDropsAbsent(t *testing.T) {
	f := newFakeClient()
	for i := 1; i <= 10; i++ {
		f.add(i, fmt.Sprintf("mon-%02d", i))
	}
	// Listed upstream but gone by the time details are fetched.
	delete(f.pokemon, "mon-04")

	res, err := NewService(f, Options{MaxConcurrency: 3}).ListPage(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pokemon) != 9 {
		t.Fatalf("expected 9 items, got %d", len(res.Pokemon))
	}
	if res.TotalCount != 10 {
		t.Errorf("TotalCount should keep the upstream count, got %d", res.TotalCount)
	}
	prev := 0
	for _, p := range res.Pokemon {
		if p.ID <= prev {
			t.Errorf("order not preserved: %d after %d", p.ID, prev)
		}
		prev = p.ID
	}
	if got := f.maxFlight.Load(); got > 3 {
		t.Errorf("expected at most 3 concurrent calls, saw %d", got)
	}
}

func TestListPageFailsOnItemError(t *testing.T) {
	f := newFakeClient()
	for i := 1; i <= 5; i++ {
		f.add(i, fmt.Sprintf("mon-%02d", i))
	}
	boom := errors.New("Failed to fetch Pokemon: request failed with status code 503")
	f.failOn["mon-03"] = boom

	res, err := newTestService(f).ListPage(context.Background(), 1, 5)
	if !errors.Is(err, boom) {
		t.Fatalf("expected item error to fail the page, got %v", err)
	}
	if res != nil {
		t.Errorf("expected nil page on error, got %+v", res)
	}
}

func TestListPageRequestsWindow(t *testing.T) {
	f := newFakeClient()
	f.add(1, "bulbasaur")

	if _, err := newTestService(f).ListPage(context.Background(), 3, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.listCalls) != 1 || f.listCalls[0] != "10/20" {
		t.Errorf("expected one list call with limit 10 offset 20, got %v", f.listCalls)
	}
}

func TestSearchBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		f := newFakeClient()
		res, err := newTestService(f).Search(context.Background(), q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Pokemon == nil || len(res.Pokemon) != 0 || res.TotalCount != 0 {
			t.Errorf("query %q: expected empty result, got %+v", q, res)
		}
		if n := f.calls.Load(); n != 0 {
			t.Errorf("query %q: expected zero upstream calls, got %d", q, n)
		}
	}
}

func TestSearchExactMatch(t *testing.T) {
	f := newFakeClient()
	f.add(25, "pikachu")
	f.add(26, "raichu")

	res, err := newTestService(f).Search(context.Background(), "Pikachu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pokemon) != 1 || res.TotalCount != 1 {
		t.Fatalf("expected exactly one result, got %d (total %d)", len(res.Pokemon), res.TotalCount)
	}
	if res.Pokemon[0].Name != "pikachu" {
		t.Errorf("expected pikachu, got %s", res.Pokemon[0].Name)
	}
	if f.searchScan != 0 {
		t.Error("exact match should bypass substring search")
	}
}

func TestSearchExactMatchByID(t *testing.T) {
	f := newFakeClient()
	f.add(150, "mewtwo")

	res, err := newTestService(f).Search(context.Background(), " 150 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pokemon) != 1 || res.Pokemon[0].ID != 150 {
		t.Errorf("expected mewtwo by id, got %+v", res.Pokemon)
	}
}

func TestSearchSubstring(t *testing.T) {
	f := newFakeClient()
	for i := 1; i <= 30; i++ {
		f.add(i, fmt.Sprintf("saur-%02d", i))
	}
	f.add(99, "pikachu")

	res, err := NewService(f, Options{SearchScanLimit: 500}).Search(context.Background(), "saur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pokemon) != 20 {
		t.Errorf("expected results truncated to 20, got %d", len(res.Pokemon))
	}
	if res.TotalCount != 30 {
		t.Errorf("expected pre-truncation total 30, got %d", res.TotalCount)
	}
	if res.Pokemon[0].Name != "saur-01" || res.Pokemon[19].Name != "saur-20" {
		t.Errorf("unexpected order: first %s last %s", res.Pokemon[0].Name, res.Pokemon[19].Name)
	}
	if f.searchScan != 500 {
		t.Errorf("expected scan limit 500 passed through, got %d", f.searchScan)
	}
}

func TestSearchNoMatches(t *testing.T) {
	f := newFakeClient()
	f.add(1, "bulbasaur")

	res, err := newTestService(f).Search(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pokemon == nil || len(res.Pokemon) != 0 || res.TotalCount != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestListTypes(t *testing.T) {
	f := newFakeClient()
	f.types = []pokeapi.NamedResource{
		{Name: "normal"}, {Name: "unknown"}, {Name: "fighting"}, {Name: "shadow"}, {Name: "flying"},
	}

	tags, err := newTestService(f).ListTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"normal", "fighting", "flying"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(tags))
	}
	for i, w := range want {
		if tags[i].Name != w {
			t.Errorf("type %d: expected %s, got %s", i, w, tags[i].Name)
		}
	}
	if tags[0].DisplayName != "Normal" {
		t.Errorf("DisplayName: expected Normal, got %s", tags[0].DisplayName)
	}
}

func TestListTypesError(t *testing.T) {
	f := newFakeClient()
	boom := errors.New("Failed to fetch Pokemon types: request failed with status code 500")
	f.failOn["types"] = boom

	if _, err := newTestService(f).ListTypes(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected error to propagate, got %v", err)
	}
}

func TestListByTypePagination(t *testing.T) {
	f := newFakeClient()
	members := make([]pokeapi.NamedResource, 0, 45)
	for i := 1; i <= 45; i++ {
		name := fmt.Sprintf("fire-%02d", i)
		f.add(i, name)
		members = append(members, pokeapi.NamedResource{Name: name})
	}
	f.byType["fire"] = members
	s := newTestService(f)

	tests := []struct {
		page      int
		wantItems int
		wantNext  bool
		wantPrev  bool
	}{
		{1, 20, true, false},
		{2, 20, true, true},
		{3, 5, false, true},
		{7, 0, false, true},
		{math.MaxInt, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%d", tt.page), func(t *testing.T) {
			res, err := s.ListByType(context.Background(), "fire", tt.page, 20)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Pokemon) != tt.wantItems {
				t.Errorf("items: expected %d, got %d", tt.wantItems, len(res.Pokemon))
			}
			if res.TotalCount != 45 {
				t.Errorf("TotalCount: expected 45, got %d", res.TotalCount)
			}
			if res.TotalPages != 3 {
				t.Errorf("TotalPages: expected 3, got %d", res.TotalPages)
			}
			if res.HasNextPage != tt.wantNext || res.HasPrevPage != tt.wantPrev {
				t.Errorf("nav: expected next=%v prev=%v, got next=%v prev=%v",
					tt.wantNext, tt.wantPrev, res.HasNextPage, res.HasPrevPage)
			}
			if res.Type != "fire" {
				t.Errorf("Type: expected fire, got %q", res.Type)
			}
		})
	}
}

func TestListByTypeAbsent(t *testing.T) {
	res, err := newTestService(newFakeClient()).ListByType(context.Background(), "cosmic", 1, 20)
	if err != nil {
		t.Fatalf("absent type must not error: %v", err)
	}
	if res != nil {
		t.Errorf("expected nil page, got %+v", res)
	}
}

func TestListByTypeEmptyType(t *testing.T) {
	f := newFakeClient()
	f.byType["stellar"] = []pokeapi.NamedResource{}

	res, err := newTestService(f).ListByType(context.Background(), "stellar", 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.TotalCount != 0 || res.TotalPages != 0 || res.HasNextPage {
		t.Errorf("expected empty first page, got %+v", res)
	}
}
