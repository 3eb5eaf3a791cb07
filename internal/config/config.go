// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Upstream    UpstreamConfig    `koanf:"upstream"`
	Pagination  PaginationConfig  `koanf:"pagination"`
	Aggregation AggregationConfig `koanf:"aggregation"`
	Server      ServerConfig      `koanf:"server"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// UpstreamConfig configures the PokeAPI client.
type UpstreamConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gte=1s"`

	// CircuitBreaker wraps the client with sony/gobreaker. Off by default.
	CircuitBreaker bool `koanf:"circuit_breaker"`
}

// PaginationConfig holds listing and search sizes.
type PaginationConfig struct {
	DefaultLimit      int `koanf:"default_limit" validate:"min=1,max=1000"`
	MaxSearchLimit    int `koanf:"max_search_limit" validate:"min=1"`
	SearchResultLimit int `koanf:"search_result_limit" validate:"min=1,max=1000"`
}

// AggregationConfig bounds the per-request fan-out.
type AggregationConfig struct {
	MaxConcurrency int `koanf:"max_concurrency" validate:"min=1,max=1000"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port" validate:"min=1,max=65535"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout" validate:"gte=1s"`
	Environment string        `koanf:"environment" validate:"oneof=development test staging production"`
	CORSOrigins []string      `koanf:"cors_origins" validate:"min=1"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`

	// Format is json or console. Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller adds file:line to each entry. Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
