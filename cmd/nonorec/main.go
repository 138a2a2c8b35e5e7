// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main is the entry point for the Nonorec CLI.
//
// Nonorec loads two puzzle catalogs (color and black & white) plus the
// completion ledger, then loops: print the six best-next-puzzle views,
// read one line, and if the line names a puzzle, record it as completed
// and persist the ledger. The process runs until stdin closes or it is
// killed.
//
// Configuration is loaded via Koanf with layered sources (highest
// priority wins): NONOREC_* environment variables, an optional
// nonorec.yaml, then built-in defaults. See internal/config.
package main

import (
	"os"
	"time"

	"github.com/google/uuid"

	"nonorec/internal/catalog"
	"nonorec/internal/cli"
	"nonorec/internal/config"
	"nonorec/internal/ledger"
	"nonorec/internal/logging"
	"nonorec/internal/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger := logging.With().Str("session_id", uuid.NewString()).Logger()

	led, err := ledger.Load(cfg.Ledger.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Ledger.Path).Msg("cannot load ledger")
	}

	var puzzles []catalog.Puzzle
	for _, src := range []struct {
		path string
		cat  catalog.Category
	}{
		{cfg.Catalogs.Color, catalog.CategoryColor},
		{cfg.Catalogs.Mono, catalog.CategoryMono},
	} {
		loaded, err := catalog.Load(src.path, src.cat, cfg.Recommend.Marker)
		if err != nil {
			logger.Fatal().Err(err).Str("path", src.path).Msg("cannot load catalog")
		}
		logger.Info().
			Str("catalog", src.cat.String()).
			Int("puzzles", len(loaded)).
			Msg("catalog loaded")
		puzzles = append(puzzles, loaded...)
	}
	led.Apply(puzzles)

	engine, err := recommend.NewEngine(time.Duration(cfg.Recommend.CooldownDays)*24*time.Hour, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create engine")
	}

	renderer, err := cli.NewRenderer(cfg.Output.Format)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create renderer")
	}

	loop := cli.NewLoop(engine, puzzles, led, renderer, logger)
	if err := loop.Run(os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("loop aborted")
	}
}
