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

// Package emit serialises a scanline.Table. The table is not changed by
// emission and the order of entries is always preserved.
//
// GoSource() produces the source file for the Lookup table in the scanline
// package. This is what the go:generate program in the scanline/generator
// directory uses.
//
// CSource() produces a C source file containing an array of function
// pointers, one for each cycle. The layout is that of ppu_renderer_lookup.c in
// the C renderer, so an emitted file and a checked-in file can be compared line
// by line with the comparison package.
//
// WriteListing() is a plain text listing with one cycle per line.
//
// All emitters refuse to serialise a table that fails validation.
package emit
