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

//go:build windows

package easyterm

import "os"

// DefaultWidth is the width assumed for output that is not a terminal.
const DefaultWidth = 80

// IsTerminal always returns false on windows. Output is never coloured.
func IsTerminal(f *os.File) bool {
	return false
}

// Width always returns DefaultWidth on windows.
func Width(f *os.File) int {
	return DefaultWidth
}
