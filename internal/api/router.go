// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uriel2203/interns-pokedex/internal/middleware"
	"github.com/uriel2203/interns-pokedex/internal/views"
)

// compressionLevel is the gzip level for text responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	static        http.Handler
}

// NewRouter creates a router. A nil mwConfig uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
		static:        views.StaticHandler(),
	}
}

// Setup builds the complete HTTP handler.
func (router *Router) Setup() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(h.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(compressionLevel))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health/live", h.HealthLive)
	r.Handle("/static/*", router.static)

	r.Get("/", h.HomePage)
	r.Get("/search", h.SearchPage)
	r.Get("/type/{type}", h.TypePage)
	r.Get("/pokemon/{nameOrId}", h.PokemonPage)

	r.Route("/api", func(r chi.Router) {
		r.Route("/pokemon", func(r chi.Router) {
			r.Get("/", h.APIListPokemon)
			r.Get("/search", h.APISearchPokemon)
			r.Get("/{nameOrId}", h.APIGetPokemon)
		})
		r.Route("/types", func(r chi.Router) {
			r.Get("/", h.APIListTypes)
			r.Get("/{type}", h.APIListByType)
		})
	})

	return r
}
