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

package digest

import (
	"github.com/cespare/xxhash"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
)

// Fingerprint returns the xxhash of the action sequence of the table.
func Fingerprint(tab *scanline.Table) uint64 {
	b := make([]byte, len(tab))
	for i := range tab {
		b[i] = byte(tab[i].Action)
	}
	return xxhash.Sum64(b)
}

// Changed returns true if the fingerprint of the table is not the same as the
// supplied fingerprint.
func Changed(tab *scanline.Table, fingerprint uint64) bool {
	return Fingerprint(tab) != fingerprint
}
