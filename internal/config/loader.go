package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if REVIBE_CONFIG is set
//  3. env (prefix REVIBE_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("REVIBE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: REVIBE_ADDR, REVIBE_MAX_RECOMMENDATIONS, ...
	// Map env keys like REVIBE_LOG_LEVEL -> log_level (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("REVIBE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "revibe_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DefaultFactorWeight < 0 {
		return nil, fmt.Errorf("%w: default_factor_weight must not be negative", ErrInvalidConfig)
	}
	if cfg.MaxRecommendations < 0 {
		return nil, fmt.Errorf("%w: max_recommendations must not be negative", ErrInvalidConfig)
	}
	if cfg.MaxDayRatingChars <= 0 {
		return nil, fmt.Errorf("%w: max_day_rating_chars must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
