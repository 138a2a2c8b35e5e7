// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"nonorec/internal/catalog"
)

// Ordering selects the ranking key.
type Ordering int

const (
	// OrderXP ranks puzzles by raw experience reward.
	OrderXP Ordering = iota
	// OrderXPPerSize ranks puzzles by reward per unit of size.
	OrderXPPerSize
)

// String returns a human-readable ordering name.
func (o Ordering) String() string {
	switch o {
	case OrderXP:
		return "xp"
	case OrderXPPerSize:
		return "xp_per_size"
	default:
		return "unknown"
	}
}

// Key returns the ranking key for a puzzle under this ordering.
func (o Ordering) Key(p *catalog.Puzzle) float64 {
	if o == OrderXPPerSize {
		return p.ScorePerSize()
	}
	return float64(p.XP)
}

// Filter selects which difficulty classes are eligible.
type Filter int

const (
	// FilterAll passes every record through.
	FilterAll Filter = iota
	// FilterTrueNonogram keeps only true-nonogram puzzles.
	FilterTrueNonogram
)

// String returns a human-readable filter name.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterTrueNonogram:
		return "true_nonogram"
	default:
		return "unknown"
	}
}

// keeps reports whether the filter admits the puzzle.
func (f Filter) keeps(p *catalog.Puzzle) bool {
	return f == FilterAll || p.Difficulty == catalog.DifficultyTrueNonogram
}

// Result is a ranked recommendation list with eligibility counts.
type Result struct {
	// Puzzles is the full filtered list, best first.
	Puzzles []catalog.Puzzle `json:"puzzles"`

	// Eligible is len(Puzzles); kept explicit for display.
	Eligible int `json:"eligible"`

	// Total is the number of candidate records before filtering.
	Total int `json:"total"`
}

// Top returns the best puzzle, or nil when nothing is eligible.
func (r *Result) Top() *catalog.Puzzle {
	if len(r.Puzzles) == 0 {
		return nil
	}
	return &r.Puzzles[0]
}
