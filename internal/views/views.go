// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

// Package views renders the server-side HTML pages from templates embedded
// in the binary.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/uriel2203/interns-pokedex/internal/models"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageIndex   = "index"
	PagePokemon = "pokemon"
	PageError   = "error"
)

// maxStatValue scales stat bars; no base stat exceeds it.
const maxStatValue = 255

// IndexData feeds the listing page shared by home, search and type views.
type IndexData struct {
	Pokemon      []models.DisplayPokemon
	Types        []models.TypeTag
	TotalCount   int
	CurrentPage  int
	TotalPages   int
	HasNextPage  bool
	HasPrevPage  bool
	PrevURL      string
	NextURL      string
	SearchQuery  string
	SelectedType string
}

// PokemonData feeds the detail page.
type PokemonData struct {
	Pokemon *models.DisplayPokemon
}

// ErrorData feeds the error page.
type ErrorData struct {
	Message string
	Error   string
}

// Renderer executes the parsed page templates. Safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"statPercent": func(v int) int {
		if v <= 0 {
			return 0
		}
		if v >= maxStatValue {
			return 100
		}
		return v * 100 / maxStatValue
	},
	"typeTitle": func(tags []models.TypeTag, name string) string {
		for _, t := range tags {
			if t.Name == name {
				return t.DisplayName
			}
		}
		return name
	},
}

// New parses the embedded templates. Each page is combined with the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageIndex, PagePokemon, PageError} {
		t, err := template.New("layout.html.tmpl").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html.tmpl",
			"templates/"+name+".html.tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into a buffer and, on success, writes it with status.
// Nothing is written when execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded stylesheet and assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
