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
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
)

// Table is a chained digest of scanline tables. Each call to Add() hashes the
// table along with the digest of the previous call.
type Table struct {
	digest [sha1.Size]byte
	data   []byte
	count  int
}

// DigestError is returned by Table.Add() if the table cannot be digested.
const DigestError = "digest: %v"

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		// room for the previous digest followed by one byte per cycle
		data: make([]byte, sha1.Size+scanline.CyclesPerScanline),
	}
}

// Hash implements digest.Digest interface
func (dig *Table) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Table) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.count = 0
}

// Count returns the number of tables added since the last reset.
func (dig *Table) Count() int {
	return dig.count
}

// Add the table to the digest. The table must be valid.
func (dig *Table) Add(tab *scanline.Table) error {
	if err := tab.Validate(); err != nil {
		return curated.Errorf(DigestError, err)
	}

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the data
	n := copy(dig.data, dig.digest[:])
	for i := range tab {
		dig.data[n+i] = byte(tab[i].Action)
	}

	dig.digest = sha1.Sum(dig.data)
	dig.count++

	return nil
}
