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
	"strings"

	"github.com/jetsetilly/ppulookup/curated"
)

// Cycle is the absolute position of a dot within the scanline.
type Cycle int

// Valid returns true if the cycle is within the range of a scanline.
func (c Cycle) Valid() bool {
	return c >= 0 && c < CyclesPerScanline
}

// Layout of a rendering scanline.
const (
	CyclesPerScanline = 341
	ChunkLength       = 8

	// the first cycle of every scanline is idle
	IdleCycle Cycle = 0

	// the final two nametable fetches of the scanline (cycles 337 to 340) are
	// not chunk derived
	UnusedFetchCycles = 4

	VisibleChunks  = 32
	SpriteChunks   = 8
	PrefetchChunks = 2
)

// Hardware boundary cycles. These override the chunk patterns.
const (
	// final cycle of the visible region. fine Y is incremented along with
	// coarse X
	IncrementBothCycle Cycle = 256

	// first cycle of the sprite window. horizontal bits of t are copied to v
	TransferHorizontalCycle Cycle = 257

	// sprite fetch is triggered from the fifth cycle of the sprite window
	FetchSpritesCycle Cycle = 261
)

// Timing specifies the construction of the table. The number of chunks in
// each region and the boundary cycles are configurable but must describe a
// table of exactly CyclesPerScanline cycles. See Validate().
//
// Scanlines and VBlankScanlines are not used in construction.
type Timing struct {
	Name string

	Scanlines       int
	VBlankScanlines int

	VisibleChunks  int
	SpriteChunks   int
	PrefetchChunks int

	IncrementBoth      Cycle
	TransferHorizontal Cycle
	FetchSprites       Cycle
}

func (tm Timing) String() string {
	return tm.Name
}

// all the video standards use the same dot layout for a rendering scanline.
// they differ only in the number of scanlines per frame.
var (
	NTSC = Timing{
		Name:               "NTSC",
		Scanlines:          262,
		VBlankScanlines:    20,
		VisibleChunks:      VisibleChunks,
		SpriteChunks:       SpriteChunks,
		PrefetchChunks:     PrefetchChunks,
		IncrementBoth:      IncrementBothCycle,
		TransferHorizontal: TransferHorizontalCycle,
		FetchSprites:       FetchSpritesCycle,
	}

	PAL = Timing{
		Name:               "PAL",
		Scanlines:          312,
		VBlankScanlines:    70,
		VisibleChunks:      VisibleChunks,
		SpriteChunks:       SpriteChunks,
		PrefetchChunks:     PrefetchChunks,
		IncrementBoth:      IncrementBothCycle,
		TransferHorizontal: TransferHorizontalCycle,
		FetchSprites:       FetchSpritesCycle,
	}

	Dendy = Timing{
		Name:               "Dendy",
		Scanlines:          312,
		VBlankScanlines:    20,
		VisibleChunks:      VisibleChunks,
		SpriteChunks:       SpriteChunks,
		PrefetchChunks:     PrefetchChunks,
		IncrementBoth:      IncrementBothCycle,
		TransferHorizontal: TransferHorizontalCycle,
		FetchSprites:       FetchSpritesCycle,
	}
)

// Timings is the list of preset timings.
var Timings = []Timing{NTSC, PAL, Dendy}

// Curated error patterns.
const (
	UnknownTiming = "scanline: unknown timing (%s)"
	InvalidTiming = "scanline: invalid timing (%s): %s"
)

// TimingFor returns the preset timing with the specified name. The comparison
// is case insensitive. "AUTO" and the empty string return NTSC.
func TimingFor(name string) (Timing, error) {
	switch strings.ToUpper(name) {
	case "", "AUTO":
		return NTSC, nil
	}
	for _, tm := range Timings {
		if strings.EqualFold(tm.Name, name) {
			return tm, nil
		}
	}
	return Timing{}, curated.Errorf(UnknownTiming, name)
}

// Chunks returns the total number of chunks in the timing.
func (tm Timing) Chunks() int {
	return tm.VisibleChunks + tm.SpriteChunks + tm.PrefetchChunks
}

// chunk boundaries. the first cycle of chunk n is chunkStart(n)
func chunkStart(n int) Cycle {
	return Cycle(n*ChunkLength + 1)
}

func chunkEnd(n int) Cycle {
	return Cycle(n*ChunkLength + ChunkLength)
}

// Validate checks that the timing describes a table of exactly
// CyclesPerScanline cycles and that each boundary cycle falls on a cycle of
// the correct region at the correct chunk offset. A boundary that is not in
// the correct position would never be applied.
func (tm Timing) Validate() error {
	if tm.VisibleChunks < 0 || tm.SpriteChunks < 0 || tm.PrefetchChunks < 0 {
		return curated.Errorf(InvalidTiming, tm.Name, "negative chunk count")
	}

	n := 1 + tm.Chunks()*ChunkLength + UnusedFetchCycles
	if n != CyclesPerScanline {
		return curated.Errorf(InvalidTiming, tm.Name,
			fmt.Sprintf("chunk counts produce %d cycles not %d", n, CyclesPerScanline))
	}

	for _, b := range []struct {
		name  string
		cycle Cycle
	}{
		{"increment both", tm.IncrementBoth},
		{"transfer horizontal", tm.TransferHorizontal},
		{"fetch sprites", tm.FetchSprites},
	} {
		if !b.cycle.Valid() {
			return curated.Errorf(InvalidTiming, tm.Name,
				fmt.Sprintf("%s cycle (%d) is outside of the scanline", b.name, b.cycle))
		}
	}

	// increment both replaces the final cycle of a visible chunk
	if tm.VisibleChunks == 0 || tm.IncrementBoth < chunkEnd(0) || tm.IncrementBoth > chunkEnd(tm.VisibleChunks-1) ||
		tm.IncrementBoth%ChunkLength != 0 {
		return curated.Errorf(InvalidTiming, tm.Name,
			fmt.Sprintf("increment both cycle (%d) is not the final cycle of a visible chunk", tm.IncrementBoth))
	}

	// sprite window overrides replace the first and fifth cycles of a sprite
	// window chunk
	first := chunkStart(tm.VisibleChunks)
	last := chunkEnd(tm.VisibleChunks + tm.SpriteChunks - 1)

	if tm.SpriteChunks == 0 || tm.TransferHorizontal < first || tm.TransferHorizontal > last ||
		tm.TransferHorizontal%ChunkLength != 1 {
		return curated.Errorf(InvalidTiming, tm.Name,
			fmt.Sprintf("transfer horizontal cycle (%d) is not the first cycle of a sprite window chunk", tm.TransferHorizontal))
	}

	if tm.FetchSprites < first || tm.FetchSprites > last || tm.FetchSprites%ChunkLength != 5 {
		return curated.Errorf(InvalidTiming, tm.Name,
			fmt.Sprintf("fetch sprites cycle (%d) is not the fifth cycle of a sprite window chunk", tm.FetchSprites))
	}

	return nil
}

// Region of the scanline a cycle belongs to.
type Region int

// List of valid Region values.
const (
	Idle Region = iota
	Visible
	SpriteWindow
	Prefetch
	UnusedFetch
)

func (r Region) String() string {
	switch r {
	case Idle:
		return "idle"
	case Visible:
		return "visible"
	case SpriteWindow:
		return "sprite window"
	case Prefetch:
		return "prefetch"
	case UnusedFetch:
		return "unused fetch"
	}
	return "unknown region"
}

// Region returns the region of the scanline the cycle belongs to. The result
// for an invalid cycle is undefined.
func (tm Timing) Region(c Cycle) Region {
	switch {
	case c == IdleCycle:
		return Idle
	case c <= chunkEnd(tm.VisibleChunks-1):
		return Visible
	case c <= chunkEnd(tm.VisibleChunks+tm.SpriteChunks-1):
		return SpriteWindow
	case c <= chunkEnd(tm.Chunks()-1):
		return Prefetch
	}
	return UnusedFetch
}
