// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli drives the interactive recommendation loop: print the six
// views, read one line, mark a puzzle done when the line names one.
package cli

import (
	"fmt"
	"time"

	"nonorec/internal/catalog"
	"nonorec/internal/recommend"
)

// View names one of the six recommendation displays.
type View struct {
	// Label is the heading printed before the recommendation.
	Label string

	// Category selects which catalog the view draws from.
	Category catalog.Category

	// Ordering is the ranking key.
	Ordering recommend.Ordering

	// Filter restricts by difficulty class.
	Filter recommend.Filter
}

// Views are the six displays computed on every loop iteration, in print
// order: both catalogs under both orderings, then the true-nonogram
// subset of the black & white catalog under both orderings.
var Views = []View{
	{"color by XP", catalog.CategoryColor, recommend.OrderXP, recommend.FilterAll},
	{"color by XP/size", catalog.CategoryColor, recommend.OrderXPPerSize, recommend.FilterAll},
	{"b&w by XP", catalog.CategoryMono, recommend.OrderXP, recommend.FilterAll},
	{"b&w by XP/size", catalog.CategoryMono, recommend.OrderXPPerSize, recommend.FilterAll},
	{"true nonogram by XP", catalog.CategoryMono, recommend.OrderXP, recommend.FilterTrueNonogram},
	{"true nonogram by XP/size", catalog.CategoryMono, recommend.OrderXPPerSize, recommend.FilterTrueNonogram},
}

// ViewResult pairs a view with its computed recommendation.
type ViewResult struct {
	Label    string             `json:"label"`
	Ordering recommend.Ordering `json:"-"`
	Top      *catalog.Puzzle    `json:"top,omitempty"`
	Score    float64            `json:"score,omitempty"`
	Eligible int                `json:"eligible"`
	Total    int                `json:"total"`
}

// ScoreString renders XP as an integer and XP/size with two decimals.
func (vr *ViewResult) ScoreString() string {
	if vr.Ordering == recommend.OrderXPPerSize {
		return fmt.Sprintf("%.2f", vr.Score)
	}
	return fmt.Sprintf("%d", int(vr.Score))
}

// computeView ranks one view's candidate subset.
func computeView(e *recommend.Engine, now time.Time, v View, puzzles []catalog.Puzzle) ViewResult {
	candidates := make([]catalog.Puzzle, 0, len(puzzles))
	for _, p := range puzzles {
		if p.Category == v.Category {
			candidates = append(candidates, p)
		}
	}

	res := e.Rank(now, candidates, v.Ordering, v.Filter)
	vr := ViewResult{Label: v.Label, Ordering: v.Ordering, Eligible: res.Eligible, Total: res.Total}
	if top := res.Top(); top != nil {
		vr.Top = top
		vr.Score = v.Ordering.Key(top)
	}
	return vr
}
