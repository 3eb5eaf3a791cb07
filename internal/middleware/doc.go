// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

// Package middleware provides the HTTP middleware shared by the HTML and JSON
// routes: request IDs, Prometheus instrumentation and access logging.
//
// All middleware has the func(http.Handler) http.Handler shape expected by
// chi's Use. Recommended order:
//
//	r.Use(middleware.RequestID)
//	r.Use(chimiddleware.RealIP)
//	r.Use(middleware.AccessLog)
//	r.Use(chimiddleware.Recoverer)
//	r.Use(middleware.PrometheusMetrics)
package middleware
