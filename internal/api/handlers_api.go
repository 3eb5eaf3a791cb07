// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// APIListPokemon handles GET /api/pokemon?page=&limit=
func (h *Handler) APIListPokemon(w http.ResponseWriter, r *http.Request) {
	page := parseIntParam(r, "page", 1)
	limit := parseIntParam(r, "limit", h.svc.DefaultLimit())

	data, err := h.svc.ListPage(r.Context(), page, limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}
	respondData(w, data)
}

// APISearchPokemon handles GET /api/pokemon/search?q=
func (h *Handler) APISearchPokemon(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}
	respondData(w, data)
}

// APIGetPokemon handles GET /api/pokemon/{nameOrId}
func (h *Handler) APIGetPokemon(w http.ResponseWriter, r *http.Request) {
	nameOrID := chi.URLParam(r, "nameOrId")

	p, err := h.svc.GetDetails(r.Context(), nameOrID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}
	if p == nil {
		respondError(w, r, http.StatusNotFound, "Pokemon not found: "+nameOrID, nil)
		return
	}
	respondData(w, p)
}

// APIListTypes handles GET /api/types
func (h *Handler) APIListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}
	respondData(w, types)
}

// APIListByType handles GET /api/types/{type}?page=
// The page size is always the configured default.
func (h *Handler) APIListByType(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, "type")
	page := parseIntParam(r, "page", 1)

	data, err := h.svc.ListByType(r.Context(), typeName, page, h.svc.DefaultLimit())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}
	if data == nil {
		respondError(w, r, http.StatusNotFound, "Type not found: "+typeName, nil)
		return
	}
	respondData(w, data)
}
