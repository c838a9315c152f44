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
)

// Entry pairs a cycle with the action performed on that cycle.
type Entry struct {
	Cycle  Cycle
	Action Action
}

func (e Entry) String() string {
	return fmt.Sprintf("%d:%s", e.Cycle, e.Action)
}

// Table of actions for every cycle of a scanline, indexed by cycle.
//
// Table is an array and not a slice so that a copy of a table is a copy of
// every entry. Lookup can be shared freely.
type Table [CyclesPerScanline]Entry

// InvalidTable is returned by Validate() when the table does not contain
// exactly one entry for each cycle, in order.
const InvalidTable = "scanline: invalid table: %s"

// Action returns the action for the cycle. Returns RestCycle if the cycle is
// outside of the scanline.
func (tab *Table) Action(c Cycle) Action {
	if !c.Valid() {
		return RestCycle
	}
	return tab[c].Action
}

// Actions returns the action of every cycle in order.
func (tab *Table) Actions() []Action {
	a := make([]Action, len(tab))
	for i := range tab {
		a[i] = tab[i].Action
	}
	return a
}

// NumChunks is the number of chunk derived groups in the table.
const NumChunks = (CyclesPerScanline - 1 - UnusedFetchCycles) / ChunkLength

// Chunk returns the eight entries of the numbered chunk. Chunk zero starts on
// cycle 1. Returns nil if the chunk number is out of range.
func (tab *Table) Chunk(chunk int) []Entry {
	if chunk < 0 || chunk >= NumChunks {
		return nil
	}
	s := chunkStart(chunk)
	e := make([]Entry, ChunkLength)
	copy(e, tab[s:s+ChunkLength])
	return e
}

// Count returns the number of cycles in the table with the action.
func (tab *Table) Count(a Action) int {
	var n int
	for i := range tab {
		if tab[i].Action == a {
			n++
		}
	}
	return n
}

// Cycles returns every cycle in the table with the action, in order.
func (tab *Table) Cycles(a Action) []Cycle {
	c := make([]Cycle, 0, tab.Count(a))
	for i := range tab {
		if tab[i].Action == a {
			c = append(c, tab[i].Cycle)
		}
	}
	return c
}

// Validate checks that every cycle has exactly one entry, that the entries are
// in order, and that every action is valid.
func (tab *Table) Validate() error {
	for i := range tab {
		if tab[i].Cycle != Cycle(i) {
			return curated.Errorf(InvalidTable, fmt.Sprintf("entry %d is for cycle %d", i, tab[i].Cycle))
		}
		if !tab[i].Action.Valid() {
			return curated.Errorf(InvalidTable, fmt.Sprintf("cycle %d has unknown action (%d)", i, tab[i].Action))
		}
	}
	return nil
}

// sanity check the generated table. if this fails then table.go has been
// edited by hand or the generator is broken
func init() {
	if err := Lookup.Validate(); err != nil {
		panic(fmt.Sprintf("generated lookup table: %v", err))
	}
}
