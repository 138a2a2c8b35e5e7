// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"nonorec/internal/catalog"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultCooldown, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

// testPuzzles mirrors the two-record vector used throughout: A is a
// small true nonogram worth ~50 XP, B a larger variant worth 30.
func testPuzzles() []catalog.Puzzle {
	return []catalog.Puzzle{
		{Name: "A", XP: 50, Width: 5, Height: 10, Difficulty: catalog.DifficultyTrueNonogram, Category: catalog.CategoryMono},
		{Name: "B", XP: 30, Width: 10, Height: 10, Difficulty: catalog.DifficultyVariant, Category: catalog.CategoryMono},
	}
}

func names(puzzles []catalog.Puzzle) []string {
	out := make([]string, len(puzzles))
	for i, p := range puzzles {
		out[i] = p.Name
	}
	return out
}

func TestNewEngine_RejectsNonPositiveCooldown(t *testing.T) {
	if _, err := NewEngine(0, zerolog.New(io.Discard)); err == nil {
		t.Error("NewEngine(0) error = nil, want error")
	}
	if _, err := NewEngine(-time.Hour, zerolog.New(io.Discard)); err == nil {
		t.Error("NewEngine(-1h) error = nil, want error")
	}
}

func TestEngine_Rank_Ordering(t *testing.T) {
	e := newTestEngine(t)

	t.Run("by XP", func(t *testing.T) {
		res := e.Rank(testNow, testPuzzles(), OrderXP, FilterAll)
		got := names(res.Puzzles)
		if len(got) != 2 || got[0] != "A" || got[1] != "B" {
			t.Errorf("order = %v, want [A B]", got)
		}
	})

	t.Run("by XP per size", func(t *testing.T) {
		// A scores 50/5 = 10.0, B scores 30/10 = 3.0.
		res := e.Rank(testNow, testPuzzles(), OrderXPPerSize, FilterAll)
		got := names(res.Puzzles)
		if len(got) != 2 || got[0] != "A" || got[1] != "B" {
			t.Errorf("order = %v, want [A B]", got)
		}
	})

	t.Run("adjacent keys are non-increasing", func(t *testing.T) {
		for _, ord := range []Ordering{OrderXP, OrderXPPerSize} {
			res := e.Rank(testNow, testPuzzles(), ord, FilterAll)
			for i := 1; i < len(res.Puzzles); i++ {
				a := ord.Key(&res.Puzzles[i-1])
				b := ord.Key(&res.Puzzles[i])
				if a < b {
					t.Errorf("%v: key[%d]=%f < key[%d]=%f", ord, i-1, a, i, b)
				}
			}
		}
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		puzzles := []catalog.Puzzle{
			{Name: "first", XP: 40, Width: 10, Height: 10},
			{Name: "second", XP: 40, Width: 10, Height: 10},
		}
		res := e.Rank(testNow, puzzles, OrderXP, FilterAll)
		got := names(res.Puzzles)
		if got[0] != "first" || got[1] != "second" {
			t.Errorf("order = %v, want [first second]", got)
		}
	})
}

func TestEngine_Rank_Filter(t *testing.T) {
	e := newTestEngine(t)

	t.Run("true nonogram only", func(t *testing.T) {
		res := e.Rank(testNow, testPuzzles(), OrderXP, FilterTrueNonogram)
		got := names(res.Puzzles)
		if len(got) != 1 || got[0] != "A" {
			t.Errorf("filtered = %v, want [A]", got)
		}
		if res.Total != 2 {
			t.Errorf("Total = %d, want 2", res.Total)
		}
		if res.Eligible != 1 {
			t.Errorf("Eligible = %d, want 1", res.Eligible)
		}
	})

	t.Run("filtered output is a subset of unfiltered", func(t *testing.T) {
		all := e.Rank(testNow, testPuzzles(), OrderXP, FilterAll)
		subset := e.Rank(testNow, testPuzzles(), OrderXP, FilterTrueNonogram)

		inAll := make(map[string]bool)
		for _, p := range all.Puzzles {
			inAll[p.Name] = true
		}
		for _, p := range subset.Puzzles {
			if !inAll[p.Name] {
				t.Errorf("puzzle %q in filtered output but not in unfiltered", p.Name)
			}
			if p.Difficulty != catalog.DifficultyTrueNonogram {
				t.Errorf("puzzle %q difficulty = %v, want true nonogram", p.Name, p.Difficulty)
			}
		}
	})
}

func TestEngine_Rank_Cooldown(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		lastDone time.Time
		want     bool
	}{
		{"never completed", time.Time{}, true},
		{"completed long ago", testNow.Add(-60 * 24 * time.Hour), true},
		{"just outside the window", testNow.Add(-DefaultCooldown - time.Second), true},
		{"exactly at the boundary", testNow.Add(-DefaultCooldown), false},
		{"completed yesterday", testNow.Add(-24 * time.Hour), false},
		{"completed now", testNow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			puzzles := []catalog.Puzzle{
				{Name: "A", XP: 50, Width: 5, Height: 10, LastDone: tt.lastDone},
			}
			res := e.Rank(testNow, puzzles, OrderXP, FilterAll)
			got := len(res.Puzzles) == 1
			if got != tt.want {
				t.Errorf("eligible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Rank_MarkDoneExcludes(t *testing.T) {
	e := newTestEngine(t)
	puzzles := testPuzzles()

	before := e.Rank(testNow, puzzles, OrderXP, FilterAll)
	if top := before.Top(); top == nil || top.Name != "A" {
		t.Fatalf("Top() = %v, want A", top)
	}

	// Completing A drops it from every view until the window elapses.
	puzzles[0].LastDone = testNow
	after := e.Rank(testNow, puzzles, OrderXP, FilterAll)
	if top := after.Top(); top == nil || top.Name != "B" {
		t.Errorf("Top() after marking A done = %v, want B", top)
	}

	elapsed := testNow.Add(DefaultCooldown + time.Second)
	again := e.Rank(elapsed, puzzles, OrderXP, FilterAll)
	if top := again.Top(); top == nil || top.Name != "A" {
		t.Errorf("Top() after window elapsed = %v, want A", top)
	}
}

func TestResult_Top(t *testing.T) {
	r := Result{}
	if r.Top() != nil {
		t.Error("Top() on empty result != nil")
	}
}
