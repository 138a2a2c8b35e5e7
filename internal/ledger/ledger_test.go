// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nonorec/internal/catalog"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestLoad_MergesDuplicateRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	content := strings.Join([]string{
		"Name,LastDone",
		"Sunset,2026-01-01T00:00:00Z",
		"Sunset,2026-02-01T00:00:00Z",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (duplicates merged)", l.Len())
	}
	want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := l.Lookup("Sunset", time.Time{}); !got.Equal(want) {
		t.Errorf("Lookup() = %v, want %v (last row wins)", got, want)
	}
}

func TestLoad_BadTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := os.WriteFile(path, []byte("Name,LastDone\nSunset,yesterday\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want error for bad timestamp")
	}
}

func TestLoad_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := os.WriteFile(path, []byte("Puzzle,When\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want error for missing columns")
	}
}

func TestLedger_Lookup(t *testing.T) {
	l := &Ledger{index: map[string]int{}}
	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.Upsert("Sunset", done)

	t.Run("known name returns stored time", func(t *testing.T) {
		if got := l.Lookup("Sunset", time.Time{}); !got.Equal(done) {
			t.Errorf("Lookup() = %v, want %v", got, done)
		}
	})

	t.Run("unknown name returns the default", func(t *testing.T) {
		def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		if got := l.Lookup("Checker", def); !got.Equal(def) {
			t.Errorf("Lookup() = %v, want default %v", got, def)
		}
	})
}

func TestLedger_UpsertIdempotent(t *testing.T) {
	l := &Ledger{index: map[string]int{}}
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.Upsert("Sunset", ts)
	l.Upsert("Sunset", ts)
	if l.Len() != 1 {
		t.Fatalf("Len() = %d after repeated upsert, want 1", l.Len())
	}

	later := ts.Add(24 * time.Hour)
	l.Upsert("Sunset", later)
	if l.Len() != 1 {
		t.Fatalf("Len() = %d after overwrite, want 1", l.Len())
	}
	if got := l.Lookup("Sunset", time.Time{}); !got.Equal(later) {
		t.Errorf("Lookup() = %v, want %v", got, later)
	}
}

func TestLedger_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	entries := map[string]time.Time{
		"Sunset":  time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
		"Checker": time.Date(2026, 2, 20, 18, 0, 0, 0, time.UTC),
		"Harbor":  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	for name, ts := range entries {
		l.Upsert(name, ts)
	}
	if err := l.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.Len() != len(entries) {
		t.Fatalf("reloaded Len() = %d, want %d", reloaded.Len(), len(entries))
	}
	for name, want := range entries {
		if got := reloaded.Lookup(name, time.Time{}); !got.Equal(want) {
			t.Errorf("reloaded Lookup(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLedger_Apply(t *testing.T) {
	l := &Ledger{index: map[string]int{}}
	done := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	l.Upsert("Sunset", done)

	puzzles := []catalog.Puzzle{
		{Name: "Sunset"},
		{Name: "Checker"},
	}
	l.Apply(puzzles)

	if !puzzles[0].LastDone.Equal(done) {
		t.Errorf("Sunset LastDone = %v, want %v", puzzles[0].LastDone, done)
	}
	if !puzzles[1].LastDone.IsZero() {
		t.Errorf("Checker LastDone = %v, want zero", puzzles[1].LastDone)
	}
}
