// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ledger persists the name → last-completed mapping that keeps
// recently solved puzzles out of the recommendations.
//
// The ledger is a two-column CSV (Name, LastDone with RFC3339
// timestamps). It is rewritten in full on every update; there is no
// incremental append.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nonorec/internal/catalog"
)

// Column names of the ledger file.
const (
	ColumnName     = "Name"
	ColumnLastDone = "LastDone"
)

// Entry is one ledger row.
type Entry struct {
	Name     string
	LastDone time.Time
}

// Ledger holds the completion entries in file order with a name index.
// At most one entry exists per name.
type Ledger struct {
	path    string
	entries []Entry
	index   map[string]int
}

// Load reads the ledger at path. A missing file yields an empty ledger
// so that first runs work without any setup; every other failure is
// returned to the caller.
func Load(path string) (*Ledger, error) {
	l := &Ledger{path: path, index: make(map[string]int)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return l, nil
		}
		return nil, fmt.Errorf("read ledger header %s: %w", path, err)
	}

	nameIdx, doneIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case ColumnName:
			nameIdx = i
		case ColumnLastDone:
			doneIdx = i
		}
	}
	if nameIdx < 0 || doneIdx < 0 {
		return nil, fmt.Errorf("ledger %s: want columns %q and %q", path, ColumnName, ColumnLastDone)
	}

	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ledger %s: %w", path, err)
		}
		line++

		t, err := time.Parse(time.RFC3339, strings.TrimSpace(row[doneIdx]))
		if err != nil {
			return nil, fmt.Errorf("ledger %s line %d: bad timestamp: %w", path, line, err)
		}
		// Merge duplicate rows by name rather than appending; the last
		// row wins.
		l.Upsert(row[nameIdx], t)
	}

	return l, nil
}

// Len is the number of distinct names in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Lookup returns the stored timestamp for name, or def when the puzzle
// has never been completed.
func (l *Ledger) Lookup(name string, def time.Time) time.Time {
	if i, ok := l.index[name]; ok {
		return l.entries[i].LastDone
	}
	return def
}

// Upsert records that name was completed at t: a new entry is appended,
// an existing one has its timestamp overwritten.
func (l *Ledger) Upsert(name string, t time.Time) {
	if i, ok := l.index[name]; ok {
		l.entries[i].LastDone = t
		return
	}
	l.index[name] = len(l.entries)
	l.entries = append(l.entries, Entry{Name: name, LastDone: t})
}

// Apply stamps each puzzle's LastDone from the ledger. Puzzles without
// an entry keep the zero time, meaning never completed.
func (l *Ledger) Apply(puzzles []catalog.Puzzle) {
	for i := range puzzles {
		puzzles[i].LastDone = l.Lookup(puzzles[i].Name, time.Time{})
	}
}

// Save rewrites the whole ledger file. The write goes through a
// temporary file in the same directory followed by a rename.
func (l *Ledger) Save() error {
	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create ledger temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write([]string{ColumnName, ColumnLastDone}); err != nil {
		tmp.Close()
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, e := range l.entries {
		if err := w.Write([]string{e.Name, e.LastDone.Format(time.RFC3339)}); err != nil {
			tmp.Close()
			return fmt.Errorf("write ledger entry %q: %w", e.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close ledger temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("replace ledger %s: %w", l.path, err)
	}
	return nil
}
