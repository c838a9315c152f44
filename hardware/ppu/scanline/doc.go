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

// Package scanline describes what the PPU does on every dot-cycle of a
// rendering scanline. A scanline is 341 cycles long and every cycle is
// assigned exactly one Action.
//
// The table is constructed from 8 cycle chunks. Each chunk follows one of two
// patterns:
//
//	pattern A (tile fetch)    rest, NT, rest, AT, rest, PT lo, PT hi, inc hori(v)
//	pattern B (sprite window) rest, NT, rest, NT, rest, rest, rest, rest
//
// Cycle 0 is idle. Cycles 1-256 are 32 chunks of pattern A, cycles 257-320 are
// 8 chunks of pattern B and cycles 321-336 are 2 chunks of pattern A (the
// first two tiles of the next scanline). Cycles 337-340 are two unused
// nametable fetches.
//
// Three cycles override the chunk pattern. These are identified by comparing
// the absolute cycle, and never the offset within the chunk, against the
// hardware boundaries:
//
//	256 inc hori(v) becomes inc vert(v) and hori(v)
//	257 the rest cycle becomes hori(v) = hori(t)
//	261 the rest cycle becomes the sprite fetch
//
// Build() returns the table for the default NTSC timing. BuildTiming() accepts
// any Timing and validates it first. The table produced by Build() is also
// available, without construction, as Lookup. Lookup is generated by the
// program in the generator sub-directory.
package scanline
