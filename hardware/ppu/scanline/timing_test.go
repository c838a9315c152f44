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

package scanline_test

import (
	"testing"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/test"
)

func TestPresets(t *testing.T) {
	ntsc := scanline.Build()
	for _, tm := range scanline.Timings {
		test.ExpectSuccess(t, tm.Validate(), tm)
		tab, err := scanline.BuildTiming(tm)
		test.ExpectSuccess(t, err, tm)
		test.ExpectEquality(t, tab, ntsc, tm)
	}
}

func TestTimingFor(t *testing.T) {
	for _, name := range []string{"", "AUTO", "ntsc", "NTSC"} {
		tm, err := scanline.TimingFor(name)
		test.ExpectSuccess(t, err, name)
		test.ExpectEquality(t, tm.Name, "NTSC", name)
	}

	tm, err := scanline.TimingFor("pal")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tm.Name, "PAL")

	tm, err = scanline.TimingFor("dendy")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tm.Scanlines, 312)

	_, err = scanline.TimingFor("SECAM")
	test.ExpectSuccess(t, curated.Is(err, scanline.UnknownTiming))
}

func TestInvalidTimings(t *testing.T) {
	mod := func(f func(tm *scanline.Timing)) scanline.Timing {
		tm := scanline.NTSC
		tm.Name = "test"
		f(&tm)
		return tm
	}

	invalid := []scanline.Timing{
		// too short
		mod(func(tm *scanline.Timing) { tm.PrefetchChunks = 1 }),

		// too long
		mod(func(tm *scanline.Timing) { tm.SpriteChunks = 9 }),

		// correct total but chunk counts negative
		mod(func(tm *scanline.Timing) { tm.PrefetchChunks = -1; tm.SpriteChunks = 11 }),

		// boundaries outside of the scanline
		mod(func(tm *scanline.Timing) { tm.IncrementBoth = 341 }),
		mod(func(tm *scanline.Timing) { tm.TransferHorizontal = -1 }),
		mod(func(tm *scanline.Timing) { tm.FetchSprites = 400 }),

		// increment both not at the end of a visible chunk
		mod(func(tm *scanline.Timing) { tm.IncrementBoth = 255 }),
		mod(func(tm *scanline.Timing) { tm.IncrementBoth = 264 }),
		mod(func(tm *scanline.Timing) { tm.IncrementBoth = 336 }),
		mod(func(tm *scanline.Timing) { tm.IncrementBoth = 0 }),

		// transfer horizontal not on the first cycle of a sprite window chunk
		mod(func(tm *scanline.Timing) { tm.TransferHorizontal = 258 }),
		mod(func(tm *scanline.Timing) { tm.TransferHorizontal = 249 }),
		mod(func(tm *scanline.Timing) { tm.TransferHorizontal = 321 }),

		// fetch sprites not on the fifth cycle of a sprite window chunk
		mod(func(tm *scanline.Timing) { tm.FetchSprites = 260 }),
		mod(func(tm *scanline.Timing) { tm.FetchSprites = 253 }),
		mod(func(tm *scanline.Timing) { tm.FetchSprites = 325 }),
	}

	for i, tm := range invalid {
		err := tm.Validate()
		test.ExpectSuccess(t, curated.Is(err, scanline.InvalidTiming), i)

		tab, err := scanline.BuildTiming(tm)
		test.ExpectSuccess(t, curated.Is(err, scanline.InvalidTiming), i)
		test.ExpectEquality(t, tab, scanline.Table{}, i)
	}
}

func TestAlternativeBoundaries(t *testing.T) {
	// boundaries moved to different, but well formed, positions
	tm := scanline.NTSC
	tm.Name = "test"
	tm.IncrementBoth = 248
	tm.TransferHorizontal = 265
	tm.FetchSprites = 317

	tab, err := scanline.BuildTiming(tm)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, tab.Validate())

	test.ExpectEquality(t, tab.Action(248), scanline.IncrementBoth)
	test.ExpectEquality(t, tab.Action(256), scanline.IncrementHorizontal)
	test.ExpectEquality(t, tab.Action(257), scanline.RestCycle)
	test.ExpectEquality(t, tab.Action(265), scanline.TransferHorizontal)
	test.ExpectEquality(t, tab.Action(261), scanline.RestCycle)
	test.ExpectEquality(t, tab.Action(317), scanline.FetchSprites)
}

func TestAlternativeRegions(t *testing.T) {
	// a shorter visible region and a longer sprite window
	tm := scanline.NTSC
	tm.Name = "test"
	tm.VisibleChunks = 30
	tm.SpriteChunks = 10
	tm.IncrementBoth = 240
	tm.TransferHorizontal = 241
	tm.FetchSprites = 245

	tab, err := scanline.BuildTiming(tm)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Action(240), scanline.IncrementBoth)
	test.ExpectEquality(t, tab.Action(241), scanline.TransferHorizontal)
	test.ExpectEquality(t, tab.Action(244), scanline.FetchNametable)
	test.ExpectEquality(t, tab.Action(245), scanline.FetchSprites)
	test.ExpectEquality(t, tab.Action(338), scanline.FetchNametable)
}

func TestRegion(t *testing.T) {
	tm := scanline.NTSC
	test.ExpectEquality(t, tm.Region(0), scanline.Idle)
	test.ExpectEquality(t, tm.Region(1), scanline.Visible)
	test.ExpectEquality(t, tm.Region(256), scanline.Visible)
	test.ExpectEquality(t, tm.Region(257), scanline.SpriteWindow)
	test.ExpectEquality(t, tm.Region(320), scanline.SpriteWindow)
	test.ExpectEquality(t, tm.Region(321), scanline.Prefetch)
	test.ExpectEquality(t, tm.Region(336), scanline.Prefetch)
	test.ExpectEquality(t, tm.Region(337), scanline.UnusedFetch)
	test.ExpectEquality(t, tm.Region(340), scanline.UnusedFetch)
	test.ExpectEquality(t, scanline.SpriteWindow.String(), "sprite window")
}
