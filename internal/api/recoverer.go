// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/uriel2203/interns-pokedex/internal/logging"
	"github.com/uriel2203/interns-pokedex/internal/views"
)

// Recoverer turns a handler panic into the 500 error page. http.ErrAbortHandler
// is re-raised so the server can abort the connection.
func (h *Handler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			detail := fmt.Sprint(rec)
			logging.Ctx(r.Context()).Error().
				Str("panic", sanitizeLogValue(detail)).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from handler panic")

			h.render(w, r, http.StatusInternalServerError, views.PageError, views.ErrorData{Message: msgInternal, Error: detail})
		}()
		next.ServeHTTP(w, r)
	})
}
