// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package api

import (
	"net/http"
	"strconv"
	"strings"
)

// parseIntParam reads a lenient integer query parameter. Leading whitespace
// and a sign are accepted and trailing garbage after the digits is ignored
// ("2abc" is 2). A missing, unparsable or zero value yields fallback.
// Negative values pass through; the service clamps them.
func parseIntParam(r *http.Request, name string, fallback int) int {
	s := strings.TrimLeft(r.URL.Query().Get(name), " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return fallback
	}
	return n
}
