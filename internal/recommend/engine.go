// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package recommend ranks puzzles for the interactive loop.
//
// The engine is a pure filter-and-sort over in-memory records: puzzles
// completed within the cooldown window are dropped, the difficulty
// filter is applied, and the remainder is sorted descending by the
// chosen ordering key.
package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nonorec/internal/catalog"
)

// DefaultCooldown is how long a completed puzzle stays out of the
// recommendations. Matches the catalog's monthly reward cycle.
const DefaultCooldown = 31 * 24 * time.Hour

// Engine ranks puzzle records. It holds no mutable state; all inputs
// come in through Rank.
type Engine struct {
	cooldown time.Duration
	logger   zerolog.Logger
}

// NewEngine creates an engine with the given cooldown window.
// A non-positive cooldown is rejected.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cooldown time.Duration, logger zerolog.Logger) (*Engine, error) {
	if cooldown <= 0 {
		return nil, fmt.Errorf("invalid cooldown %v: must be positive", cooldown)
	}
	return &Engine{
		cooldown: cooldown,
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Rank filters and orders the candidate puzzles.
//
// A puzzle is eligible iff its LastDone is strictly before now minus the
// cooldown window; a never-completed puzzle (zero LastDone) is always
// eligible. The filter then restricts by difficulty, and the survivors
// are sorted descending by the ordering key. The sort is stable, so
// equal keys keep their input order and identical input always produces
// identical output.
func (e *Engine) Rank(now time.Time, puzzles []catalog.Puzzle, ord Ordering, filt Filter) Result {
	cutoff := now.Add(-e.cooldown)

	kept := make([]catalog.Puzzle, 0, len(puzzles))
	for _, p := range puzzles {
		if !p.LastDone.Before(cutoff) {
			continue
		}
		if !filt.keeps(&p) {
			continue
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return ord.Key(&kept[i]) > ord.Key(&kept[j])
	})

	e.logger.Debug().
		Str("trace_id", uuid.NewString()).
		Str("ordering", ord.String()).
		Str("filter", filt.String()).
		Int("candidates", len(puzzles)).
		Int("eligible", len(kept)).
		Msg("ranked puzzles")

	return Result{Puzzles: kept, Eligible: len(kept), Total: len(puzzles)}
}
