// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/uriel2203/interns-pokedex/internal/models"
	"github.com/uriel2203/interns-pokedex/internal/views"
)

// Service is the aggregation surface the handlers depend on.
// *pokedex.Service satisfies it.
type Service interface {
	GetDetails(ctx context.Context, nameOrID string) (*models.DisplayPokemon, error)
	ListPage(ctx context.Context, page, limit int) (*models.PokemonPage, error)
	Search(ctx context.Context, query string) (*models.SearchResult, error)
	ListTypes(ctx context.Context) ([]models.TypeTag, error)
	ListByType(ctx context.Context, typeName string, page, limit int) (*models.PokemonPage, error)
	DefaultLimit() int
}

// Renderer executes HTML pages. *views.Renderer satisfies it.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

// Handler holds the dependencies shared by every route.
type Handler struct {
	svc       Service
	views     Renderer
	startTime time.Time
}

// NewHandler creates a handler set over svc rendering pages with renderer.
func NewHandler(svc Service, renderer Renderer) *Handler {
	return &Handler{
		svc:       svc,
		views:     renderer,
		startTime: time.Now(),
	}
}

// HealthLive reports process liveness. It never touches the upstream.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// Compile-time check that the production renderer fits.
var _ Renderer = (*views.Renderer)(nil)
