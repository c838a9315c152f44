// This file is part of ppulookup.
//
// ppulookup is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ppulookup is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ppulookup.  If not, see <https://www.gnu.org/licenses/>.

// Package terminal prints a scanline table to a terminal. The table is laid
// out in as many columns as will fit the width of the terminal, each entry
// coloured according to its action.
//
// Colour is only used when the output is a terminal. Output to a regular file
// or a pipe is plain text.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/terminal/ansi"
)

// Options for the Show() function.
type Options struct {
	// use ANSI colour sequences
	Color bool

	// width of the output in characters. a width of zero or less means a
	// single column
	Width int

	// show only this chunk. a negative value indicates every cycle
	Chunk int
}

// Curated error patterns.
const (
	ShowError    = "terminal: %v"
	UnknownChunk = "terminal: unknown chunk (%d)"
)

// width of the cycle number and action name of a cell
const (
	cycleWidth  = 3
	actionWidth = 19
	cellWidth   = cycleWidth + 1 + actionWidth
	cellGap     = 2
)

// pens keyed by action
var pens = map[scanline.Action]string{
	scanline.RestCycle:           ansi.PenStyles["dim"],
	scanline.FetchNametable:      ansi.Pens["green"],
	scanline.FetchAttribute:      ansi.Pens["yellow"],
	scanline.FetchPatternLow:     ansi.Pens["cyan"],
	scanline.FetchPatternHigh:    ansi.Pens["blue"],
	scanline.IncrementHorizontal: ansi.Pens["magenta"],
	scanline.IncrementBoth:       ansi.Pens["red"],
	scanline.TransferHorizontal:  ansi.DimPens["red"],
	scanline.FetchSprites:        ansi.Pens["white"],
}

// Pen returns the ANSI sequence used for the action.
func Pen(a scanline.Action) string {
	if p, ok := pens[a]; ok {
		return p
	}
	return ansi.NormalPen
}

// Columns returns the number of columns of entries that fit the width.
func Columns(width int) int {
	n := (width + cellGap) / (cellWidth + cellGap)
	if n < 1 {
		return 1
	}
	return n
}

// Show writes the table to w. Entries run down each column before moving to
// the next.
func Show(w io.Writer, tab *scanline.Table, opts Options) error {
	if err := tab.Validate(); err != nil {
		return curated.Errorf(ShowError, err)
	}

	var entries []scanline.Entry
	if opts.Chunk >= 0 {
		entries = tab.Chunk(opts.Chunk)
		if entries == nil {
			return curated.Errorf(UnknownChunk, opts.Chunk)
		}
	} else {
		entries = tab[:]
	}

	cols := Columns(opts.Width)
	if cols > len(entries) {
		cols = len(entries)
	}
	rows := (len(entries) + cols - 1) / cols

	var s strings.Builder
	for r := range rows {
		for c := range cols {
			i := c*rows + r
			if i >= len(entries) {
				break // for loop
			}
			if c > 0 {
				s.WriteString(strings.Repeat(" ", cellGap))
			}
			e := entries[i]
			if opts.Color {
				s.WriteString(Pen(e.Action))
			}
			fmt.Fprintf(&s, "%*d %-*s", cycleWidth, e.Cycle, actionWidth, e.Action.String())
			if opts.Color {
				s.WriteString(ansi.NormalPen)
			}
		}
		s.WriteString("\n")
	}

	if _, err := io.WriteString(w, s.String()); err != nil {
		return curated.Errorf(ShowError, err)
	}
	return nil
}

// Summary writes the number of cycles given to each action.
func Summary(w io.Writer, tab *scanline.Table) error {
	for _, a := range scanline.Actions {
		if _, err := fmt.Fprintf(w, "%-*s %3d\n", actionWidth, a, tab.Count(a)); err != nil {
			return curated.Errorf(ShowError, err)
		}
	}
	return nil
}
