// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/uriel2203/interns-pokedex/internal/logging"
	"github.com/uriel2203/interns-pokedex/internal/models"
	"github.com/uriel2203/interns-pokedex/internal/views"
)

// HTML error page titles.
const (
	msgLoadFailed      = "Failed to load Pokemon"
	msgDetailsFailed   = "Failed to load Pokemon details"
	msgSearchFailed    = "Search failed"
	msgTypeFailed      = "Failed to load Pokemon by type"
	msgPokemonNotFound = "Pokemon not found"
	msgTypeNotFound    = "Type not found"
	msgPageNotFound    = "Page not found"
	msgInternal        = "Something went wrong"
)

// HomePage handles GET /?page=&limit=
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	page := parseIntParam(r, "page", 1)
	limit := parseIntParam(r, "limit", h.svc.DefaultLimit())

	var data *models.PokemonPage
	types, err := h.withTypes(r.Context(), func(ctx context.Context) (err error) {
		data, err = h.svc.ListPage(ctx, page, limit)
		return err
	})
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, msgLoadFailed, err.Error(), err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageIndex, pageData(data, types, "", func(p int) string {
		return "/?" + url.Values{"page": {strconv.Itoa(p)}, "limit": {strconv.Itoa(limit)}}.Encode()
	}))
}

// SearchPage handles GET /search?q=
func (h *Handler) SearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var result *models.SearchResult
	types, err := h.withTypes(r.Context(), func(ctx context.Context) (err error) {
		result, err = h.svc.Search(ctx, query)
		return err
	})
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, msgSearchFailed, err.Error(), err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageIndex, views.IndexData{
		Pokemon:     result.Pokemon,
		Types:       types,
		TotalCount:  result.TotalCount,
		CurrentPage: 1,
		TotalPages:  1,
		SearchQuery: query,
	})
}

// TypePage handles GET /type/{type}?page=
func (h *Handler) TypePage(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, "type")
	page := parseIntParam(r, "page", 1)

	var data *models.PokemonPage
	types, err := h.withTypes(r.Context(), func(ctx context.Context) (err error) {
		data, err = h.svc.ListByType(ctx, typeName, page, h.svc.DefaultLimit())
		return err
	})
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, msgTypeFailed, err.Error(), err)
		return
	}
	if data == nil {
		h.renderError(w, r, http.StatusNotFound, msgTypeNotFound, "No Pokemon type found: "+typeName, nil)
		return
	}

	base := "/type/" + url.PathEscape(typeName)
	h.render(w, r, http.StatusOK, views.PageIndex, pageData(data, types, typeName, func(p int) string {
		return base + "?page=" + strconv.Itoa(p)
	}))
}

// PokemonPage handles GET /pokemon/{nameOrId}
func (h *Handler) PokemonPage(w http.ResponseWriter, r *http.Request) {
	nameOrID := chi.URLParam(r, "nameOrId")

	p, err := h.svc.GetDetails(r.Context(), nameOrID)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, msgDetailsFailed, err.Error(), err)
		return
	}
	if p == nil {
		h.renderError(w, r, http.StatusNotFound, msgPokemonNotFound, "No Pokemon found with name or ID: "+nameOrID, nil)
		return
	}

	h.render(w, r, http.StatusOK, views.PagePokemon, views.PokemonData{Pokemon: p})
}

// NotFound renders the 404 page for unmatched routes and methods.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, msgPageNotFound, "The page you are looking for does not exist.", nil)
}

// withTypes runs fetch alongside the type sidebar lookup. Either failure
// cancels the other and is returned.
func (h *Handler) withTypes(ctx context.Context, fetch func(context.Context) error) ([]models.TypeTag, error) {
	var types []models.TypeTag
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		types, err = h.svc.ListTypes(gctx)
		return err
	})
	g.Go(func() error {
		return fetch(gctx)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return types, nil
}

func pageData(p *models.PokemonPage, types []models.TypeTag, selectedType string, pageURL func(int) string) views.IndexData {
	d := views.IndexData{
		Pokemon:      p.Pokemon,
		Types:        types,
		TotalCount:   p.TotalCount,
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		HasNextPage:  p.HasNextPage,
		HasPrevPage:  p.HasPrevPage,
		SelectedType: selectedType,
	}
	if d.HasPrevPage {
		d.PrevURL = pageURL(d.CurrentPage - 1)
	}
	if d.HasNextPage {
		d.NextURL = pageURL(d.CurrentPage + 1)
	}
	return d
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.views.Render(w, status, page, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError shows the error page. A non-nil err is logged with the request's IDs.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message, detail string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Int("status", status).
			Msg(message)
	}
	h.render(w, r, status, views.PageError, views.ErrorData{Message: message, Error: detail})
}
