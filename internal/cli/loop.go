// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"nonorec/internal/catalog"
	"nonorec/internal/ledger"
	"nonorec/internal/recommend"
)

// Loop owns the in-memory record set and the ledger for the lifetime of
// the process. It is single-threaded; the one blocking point is the
// line read between displays.
type Loop struct {
	engine   *recommend.Engine
	puzzles  []catalog.Puzzle
	ledger   *ledger.Ledger
	renderer Renderer
	logger   zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewLoop wires the loop. puzzles is the combined record set from both
// catalogs, already stamped with ledger timestamps.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoop(e *recommend.Engine, puzzles []catalog.Puzzle, l *ledger.Ledger, r Renderer, logger zerolog.Logger) *Loop {
	return &Loop{
		engine:   e,
		puzzles:  puzzles,
		ledger:   l,
		renderer: r,
		logger:   logger.With().Str("component", "cli").Logger(),
		now:      time.Now,
	}
}

// Run displays recommendations and processes input lines until in is
// exhausted or a ledger write fails. It never returns otherwise; the
// process runs until killed.
func (lp *Loop) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := lp.display(out); err != nil {
			return err
		}

		fmt.Fprint(out, "done> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(out)
			return nil
		}

		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}

		if err := lp.markDone(out, name); err != nil {
			return err
		}
	}
}

// display computes and renders the six views.
func (lp *Loop) display(out io.Writer) error {
	now := lp.now()
	fmt.Fprintln(out)
	for _, v := range Views {
		vr := computeView(lp.engine, now, v, lp.puzzles)
		if err := lp.renderer.Render(out, vr); err != nil {
			return fmt.Errorf("render view %q: %w", v.Label, err)
		}
	}
	return nil
}

// markDone updates the named puzzle's completion time in memory and in
// the persisted ledger. An unknown name is reported and ignored.
func (lp *Loop) markDone(out io.Writer, name string) error {
	idx := -1
	for i := range lp.puzzles {
		if lp.puzzles[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		fmt.Fprintf(out, "no puzzle named %q\n", name)
		return nil
	}

	now := lp.now()
	lp.puzzles[idx].LastDone = now
	lp.ledger.Upsert(name, now)
	if err := lp.ledger.Save(); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	lp.logger.Info().
		Str("puzzle", name).
		Time("last_done", now).
		Msg("marked done")
	return nil
}
