// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokeapi

// TypeList is the envelope returned by GET /type.
type TypeList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// TypeDetail is the record returned by GET /type/{name}.
// The upstream does not paginate the member list.
type TypeDetail struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Pokemon []TypeMember `json:"pokemon"`
}

// TypeMember wraps a Pokemon reference inside a type record.
type TypeMember struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// Members flattens the nested member list, keeping upstream order.
func (t *TypeDetail) Members() []NamedResource {
	members := make([]NamedResource, 0, len(t.Pokemon))
	for _, m := range t.Pokemon {
		members = append(members, m.Pokemon)
	}
	return members
}
