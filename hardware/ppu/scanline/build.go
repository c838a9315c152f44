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

package scanline

import (
	"fmt"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/logger"
)

// the two unused nametable fetches that end the scanline
var unusedFetches = [UnusedFetchCycles]Action{
	RestCycle,
	FetchNametable,
	RestCycle,
	FetchNametable,
}

// InvalidConstruction is returned by BuildTiming() if construction did not
// produce a valid table. This should not happen for a Timing that has passed
// Validate().
const InvalidConstruction = "scanline: construction: %v"

// Build the table using the NTSC timing.
func Build() Table {
	tab, err := BuildTiming(NTSC)
	if err != nil {
		panic(fmt.Sprintf("error building scanline table: %v", err))
	}
	return tab
}

// BuildTiming builds the table for the specified timing. The timing is
// validated first. An invalid timing is never adjusted to fit.
func BuildTiming(tm Timing) (Table, error) {
	return BuildWithPermission(logger.Allow, tm)
}

// BuildWithPermission is the same as BuildTiming() but the log entry for the
// completed table is subject to the supplied permission.
func BuildWithPermission(perm logger.Permission, tm Timing) (Table, error) {
	if err := tm.Validate(); err != nil {
		return Table{}, err
	}

	b := builder{timing: tm}

	b.add(RestCycle)

	chunk := 0
	for ; chunk < tm.VisibleChunks; chunk++ {
		b.tileFetch(chunk)
	}
	for ; chunk < tm.VisibleChunks+tm.SpriteChunks; chunk++ {
		b.spriteWindow(chunk)
	}
	for ; chunk < tm.Chunks(); chunk++ {
		b.tileFetch(chunk)
	}

	for _, a := range unusedFetches {
		b.add(a)
	}

	if b.err != nil {
		return Table{}, curated.Errorf(InvalidConstruction, b.err)
	}

	if err := b.table.Validate(); err != nil {
		return Table{}, curated.Errorf(InvalidConstruction, err)
	}

	logger.Logf(perm, "scanline", "built %d cycle table for %s timing", b.next, tm.Name)

	return b.table, nil
}

type builder struct {
	timing Timing
	table  Table

	// the next cycle to be added to the table
	next Cycle

	err error
}

func (b *builder) add(a Action) {
	if b.err != nil {
		return
	}
	if !b.next.Valid() {
		b.err = fmt.Errorf("cycle %d is beyond the end of the scanline", b.next)
		return
	}
	b.table[b.next] = Entry{Cycle: b.next, Action: a}
	b.next++
}

// tileFetch adds the eight cycles of pattern A.
func (b *builder) tileFetch(chunk int) {
	cycle := Cycle(chunk * ChunkLength)

	b.add(RestCycle)
	b.add(FetchNametable)
	b.add(RestCycle)
	b.add(FetchAttribute)
	b.add(RestCycle)
	b.add(FetchPatternLow)
	b.add(FetchPatternHigh)

	if cycle+8 == b.timing.IncrementBoth {
		b.add(IncrementBoth)
	} else {
		b.add(IncrementHorizontal)
	}
}

// spriteWindow adds the eight cycles of pattern B. the nametable fetches in
// the sprite window are not used for rendering.
func (b *builder) spriteWindow(chunk int) {
	cycle := Cycle(chunk * ChunkLength)

	if cycle+1 == b.timing.TransferHorizontal {
		b.add(TransferHorizontal)
	} else {
		b.add(RestCycle)
	}

	b.add(FetchNametable)
	b.add(RestCycle)
	b.add(FetchNametable)

	if cycle+5 == b.timing.FetchSprites {
		b.add(FetchSprites)
	} else {
		b.add(RestCycle)
	}

	b.add(RestCycle)
	b.add(RestCycle)
	b.add(RestCycle)
}
