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

// Load builds a Config by layering defaults, optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PLAYBOOK_CONFIG is set
//  3. env (prefix PLAYBOOK_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PLAYBOOK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PLAYBOOK_ADDR, PLAYBOOK_QUEUE_SIZE, ...
	// Map keys like PLAYBOOK_QUEUE_SIZE -> queue_size, preserving
	// underscores to match the koanf tags on the struct.
	envProvider := env.Provider("PLAYBOOK_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "playbook_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot start with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.RouteShortMax <= 0 || c.RouteDeepMin <= c.RouteShortMax:
		return fmt.Errorf("%w: route bands must satisfy 0 < short_max < deep_min", ErrInvalidConfig)
	case c.BreakAngle <= 0 || c.BreakAngle >= 180:
		return fmt.Errorf("%w: break_angle must be in (0, 180)", ErrInvalidConfig)
	case c.InsideTolerance <= 0:
		return fmt.Errorf("%w: inside_tolerance must be positive", ErrInvalidConfig)
	}
	return nil
}
