// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where the config file is searched, first hit
// wins.
var DefaultConfigPaths = []string{
	"nonorec.yaml",
	"nonorec.yml",
}

// ConfigPathEnvVar overrides the config file search with an explicit path.
const ConfigPathEnvVar = "NONOREC_CONFIG"

// Load builds the configuration from layered sources, highest priority
// last:
//
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. Environment variables (NONOREC_* names, see envTransformFunc)
//
// The result is validated before being returned; an invalid
// configuration is an error, not a warning.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(cfgDir, "nonorec", "nonorec.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps NONOREC_* environment variables onto config
// paths. Unmapped variables are dropped so unrelated environment noise
// cannot reach the config.
func envTransformFunc(key string) string {
	mappings := map[string]string{
		"nonorec_color_catalog": "catalogs.color",
		"nonorec_mono_catalog":  "catalogs.mono",
		"nonorec_ledger":        "ledger.path",
		"nonorec_cooldown_days": "recommend.cooldown_days",
		"nonorec_marker":        "recommend.marker",
		"nonorec_output_format": "output.format",
		"nonorec_log_level":     "logging.level",
		"nonorec_log_format":    "logging.format",
	}
	if mapped, ok := mappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
