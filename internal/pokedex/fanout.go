// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package pokedex

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/uriel2203/interns-pokedex/internal/metrics"
	"github.com/uriel2203/interns-pokedex/internal/models"
	"github.com/uriel2203/interns-pokedex/internal/models/pokeapi"
)

// detailsFor resolves every reference with GetDetails, keeping input order and
// dropping absent entries. The first error cancels the rest and is returned.
func (s *Service) detailsFor(ctx context.Context, op string, refs []pokeapi.NamedResource) ([]models.DisplayPokemon, error) {
	start := time.Now()
	resolved := make([]*models.DisplayPokemon, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	if s.opts.MaxConcurrency > 0 {
		g.SetLimit(s.opts.MaxConcurrency)
	}
	for i, ref := range refs {
		g.Go(func() error {
			d, err := s.GetDetails(gctx, ref.Name)
			if err != nil {
				return err
			}
			resolved[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.DisplayPokemon, 0, len(refs))
	for _, d := range resolved {
		if d != nil {
			out = append(out, *d)
		}
	}
	metrics.RecordFanout(op, len(refs), len(refs)-len(out), time.Since(start))
	return out, nil
}
