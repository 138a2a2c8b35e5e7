// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog loads puzzle catalogs from CSV files into typed records.
//
// A catalog file is a UTF-8 CSV with a header row. The required columns
// are Name (combined id/name), XP (integer reward, optionally prefixed
// with "~" for approximate values), Size ("WxH"), and Type (free text
// whose contents classify the puzzle difficulty). Each source file holds
// exactly one category of puzzle; the category is supplied by the caller.
package catalog

import (
	"strconv"
	"time"
)

// Category identifies which catalog a puzzle came from.
type Category int

const (
	// CategoryColor is the color puzzle catalog.
	CategoryColor Category = iota
	// CategoryMono is the black & white puzzle catalog.
	CategoryMono
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryColor:
		return "color"
	case CategoryMono:
		return "b&w"
	default:
		return "unknown"
	}
}

// Difficulty classifies a puzzle by its catalog type marker.
type Difficulty int

const (
	// DifficultyVariant covers the easier or variant puzzle types.
	DifficultyVariant Difficulty = iota
	// DifficultyTrueNonogram marks puzzles whose type field carries the
	// true-nonogram marker.
	DifficultyTrueNonogram
)

// String returns a human-readable difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyTrueNonogram:
		return "true_nonogram"
	case DifficultyVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// Puzzle is one catalog record merged with its completion state.
type Puzzle struct {
	// Name is the unique puzzle identifier (the catalog's combined
	// id/name column, verbatim).
	Name string `json:"name"`

	// XP is the experience reward for completing the puzzle.
	XP int `json:"xp"`

	// Width and Height are the puzzle grid dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Difficulty is derived from the catalog's type column.
	Difficulty Difficulty `json:"difficulty"`

	// Category records which catalog file the puzzle came from.
	Category Category `json:"category"`

	// LastDone is when the puzzle was last completed. The zero value
	// means never.
	LastDone time.Time `json:"last_done,omitempty"`
}

// Size is the shorter of the puzzle's two dimensions.
func (p *Puzzle) Size() int {
	if p.Width < p.Height {
		return p.Width
	}
	return p.Height
}

// ScorePerSize is the XP reward per unit of size.
func (p *Puzzle) ScorePerSize() float64 {
	return float64(p.XP) / float64(p.Size())
}

// Dimensions renders the grid dimensions in the catalog's WxH form.
func (p *Puzzle) Dimensions() string {
	return strconv.Itoa(p.Width) + "x" + strconv.Itoa(p.Height)
}
