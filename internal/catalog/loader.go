// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names required in every catalog file.
const (
	ColumnName = "Name"
	ColumnXP   = "XP"
	ColumnSize = "Size"
	ColumnType = "Type"
)

// approxMarker prefixes XP values the catalog only knows approximately.
const approxMarker = "~"

// fieldRule binds a named column to the function that applies its cell
// value to a record. Rules are resolved against the header once, then
// applied per row.
type fieldRule struct {
	column string
	apply  func(p *Puzzle, cell string) error
}

// Load reads the catalog at path, tagging every record with the given
// category. The marker substring classifies a record as a true nonogram
// when it appears in the Type column.
//
// Errors are not recovered from: a missing required column, a malformed
// XP or Size cell, or a read failure all abort the load.
func Load(path string, cat Category, marker string) ([]Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column count validated against the header below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header %s: %w", path, err)
	}

	rules := []fieldRule{
		{ColumnName, func(p *Puzzle, cell string) error {
			p.Name = cell
			return nil
		}},
		{ColumnXP, func(p *Puzzle, cell string) error {
			v, err := parseXP(cell)
			if err != nil {
				return err
			}
			p.XP = v
			return nil
		}},
		{ColumnSize, func(p *Puzzle, cell string) error {
			w, h, err := parseSize(cell)
			if err != nil {
				return err
			}
			p.Width, p.Height = w, h
			return nil
		}},
		{ColumnType, func(p *Puzzle, cell string) error {
			if strings.Contains(cell, marker) {
				p.Difficulty = DifficultyTrueNonogram
			} else {
				p.Difficulty = DifficultyVariant
			}
			return nil
		}},
	}

	indexes := make([]int, len(rules))
	for i, rule := range rules {
		idx := columnIndex(header, rule.column)
		if idx < 0 {
			return nil, fmt.Errorf("catalog %s: missing required column %q", path, rule.column)
		}
		indexes[i] = idx
	}

	var puzzles []Puzzle
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		line++

		p := Puzzle{Category: cat}
		for i, rule := range rules {
			if indexes[i] >= len(row) {
				return nil, fmt.Errorf("catalog %s line %d: row too short for column %q", path, line, rule.column)
			}
			if err := rule.apply(&p, row[indexes[i]]); err != nil {
				return nil, fmt.Errorf("catalog %s line %d: %w", path, line, err)
			}
		}
		puzzles = append(puzzles, p)
	}

	return puzzles, nil
}

// columnIndex finds a column by name, or -1 if the header lacks it.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// parseXP strips the approximate marker and parses the reward value.
func parseXP(cell string) (int, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cell), approxMarker))
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad XP value %q: %w", cell, err)
	}
	return v, nil
}

// parseSize splits a strict WxH cell into its two dimensions.
func parseSize(cell string) (w, h int, err error) {
	parts := strings.Split(strings.TrimSpace(cell), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad size value %q: want WxH", cell)
	}
	w, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad size value %q: %w", cell, err)
	}
	h, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad size value %q: %w", cell, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size value %q: dimensions must be positive", cell)
	}
	return w, h, nil
}
