// Nonorec - Personal Nonogram Puzzle Recommender
// Copyright 2026 Nonorec contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Renderer writes one computed view to the output stream.
type Renderer interface {
	// Render writes the view result. The sentinel for an empty filtered
	// set is format-specific.
	Render(w io.Writer, vr ViewResult) error
}

// NewRenderer returns the renderer for the configured output format:
// "text" for the human-readable lines, "json" for one object per view
// (handy for piping into jq).
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return textRenderer{}, nil
	case "json":
		return jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// textRenderer prints one aligned line per view.
type textRenderer struct{}

func (textRenderer) Render(w io.Writer, vr ViewResult) error {
	if vr.Top == nil {
		_, err := fmt.Fprintf(w, "%-26s NONE                     (%d/%d eligible)\n",
			vr.Label+":", vr.Eligible, vr.Total)
		return err
	}
	_, err := fmt.Fprintf(w, "%-26s %s  %s %s  (%d/%d eligible)\n",
		vr.Label+":", vr.Top.Name, vr.ScoreString(), vr.Top.Dimensions(), vr.Eligible, vr.Total)
	return err
}

// jsonRenderer emits one JSON object per view.
type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, vr ViewResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(vr)
}
