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

// Package digest produces fingerprints of scanline tables. Two tables with
// the same digest have the same action on every cycle.
//
// The Table type is a cryptographic digest (SHA-1) that can be chained over
// several tables, in the manner of a video digest chained over several
// frames. It is useful for regression comparisons of tables built with
// different timings.
//
// Fingerprint() is a quick, non-cryptographic, hash of a single table.
package digest

// Digest implementations compute a hash of the data they are given.
type Digest interface {
	Hash() string
	ResetDigest()
}
