// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package config

import (
	"fmt"

	"github.com/uriel2203/interns-pokedex/internal/validation"
)

// Validate checks field rules declared in struct tags, then cross-field rules.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return c.validatePagination()
}

func (c *Config) validatePagination() error {
	if c.Pagination.SearchResultLimit > c.Pagination.MaxSearchLimit {
		return fmt.Errorf("SEARCH_RESULT_LIMIT (%d) must not exceed MAX_SEARCH_LIMIT (%d)",
			c.Pagination.SearchResultLimit, c.Pagination.MaxSearchLimit)
	}
	return nil
}
