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

package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
)

// WriteListing writes the table as plain text. One cycle per line, the cycle
// number followed by the action name.
func WriteListing(w io.Writer, tab *scanline.Table) error {
	if err := validate(tab); err != nil {
		return err
	}

	s := strings.Builder{}
	for _, e := range tab {
		s.WriteString(fmt.Sprintf("%3d %s\n", e.Cycle, e.Action))
	}

	return write(w, s.String())
}
