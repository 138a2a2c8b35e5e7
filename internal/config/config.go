// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads Nonorec configuration from layered sources:
// built-in defaults, an optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config is the full Nonorec configuration.
type Config struct {
	Catalogs  CatalogsConfig  `koanf:"catalogs"`
	Ledger    LedgerConfig    `koanf:"ledger"`
	Recommend RecommendConfig `koanf:"recommend"`
	Output    OutputConfig    `koanf:"output"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogsConfig locates the two puzzle catalog files.
type CatalogsConfig struct {
	// Color is the path to the color puzzle catalog CSV.
	Color string `koanf:"color" validate:"required"`

	// Mono is the path to the black & white puzzle catalog CSV.
	Mono string `koanf:"mono" validate:"required"`
}

// LedgerConfig locates the completion ledger file.
type LedgerConfig struct {
	// Path is the ledger CSV path. The file is created on first save.
	Path string `koanf:"path" validate:"required"`
}

// RecommendConfig tunes the ranking engine.
type RecommendConfig struct {
	// CooldownDays is how many days a completed puzzle stays excluded.
	CooldownDays int `koanf:"cooldown_days" validate:"min=1"`

	// Marker is the substring of the catalog Type column that marks a
	// true nonogram.
	Marker string `koanf:"marker" validate:"required"`
}

// OutputConfig selects how views are printed.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `koanf:"format" validate:"oneof=text json"`
}

// LoggingConfig configures the zerolog setup.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`

	// Format is "console" or "json".
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Default returns a Config with all default values. Catalog and ledger
// paths default to the data directory next to the binary's working
// directory.
func Default() *Config {
	return &Config{
		Catalogs: CatalogsConfig{
			Color: "data/color.csv",
			Mono:  "data/bw.csv",
		},
		Ledger: LedgerConfig{
			Path: "data/lastdone.csv",
		},
		Recommend: RecommendConfig{
			CooldownDays: 31,
			Marker:       "True_nonogram",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration, translating validator violations
// into readable messages.
func (c *Config) Validate() error {
	v := validator.New()
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// describeFieldError renders one violation as a short message.
func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	field = strings.TrimPrefix(field, "config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must be set", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
