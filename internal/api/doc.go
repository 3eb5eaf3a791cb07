// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

/*
Package api exposes the Pokedex over HTTP.

Two surfaces share one chi router:

  - HTML pages rendered through internal/views (/, /search, /type/{type},
    /pokemon/{nameOrId}) with an error page for 404 and 500 outcomes.
  - A JSON API under /api wrapping every payload in a success envelope:

    {"success": true, "data": ...}
    {"success": false, "error": "Pokemon not found: missingno"}

Operational endpoints (/metrics, /health/live) sit beside them. The only status
codes produced by handlers are 200, 404 and 500.

Middleware order, outermost first: request ID, real IP, access log, panic
recovery, CORS, Prometheus metrics, response compression.
*/
package api
