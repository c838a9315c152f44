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

// CHeader is the comment written at the top of the C source file by CSource().
const CHeader = "// This file is generated by ppulookup, it contains a lookup table of function pointers for what to do on each cycle of a ppu scanline."

// the C function implementing each action
var cFunctions = map[scanline.Action]string{
	scanline.RestCycle:           "rest_cycle",
	scanline.FetchNametable:      "fetch_nametable",
	scanline.FetchAttribute:      "fetch_attribute",
	scanline.FetchPatternLow:     "fetch_pattern_table_lo",
	scanline.FetchPatternHigh:    "fetch_pattern_table_hi",
	scanline.IncrementHorizontal: "increment_v_horizontal",
	scanline.IncrementBoth:       "increment_v_both",
	scanline.TransferHorizontal:  "transfer_t_horizontal",
	scanline.FetchSprites:        "fetch_sprites",
}

// CFunction returns the name of the C function that implements the action.
func CFunction(a scanline.Action) string {
	if f, ok := cFunctions[a]; ok {
		return f
	}
	return "rest_cycle"
}

// CSource writes the table as a C source file using the default header.
func CSource(w io.Writer, tab *scanline.Table) error {
	return CSourceWithHeader(w, tab, CHeader)
}

// CSourceWithHeader writes the table as a C source file. The header should be
// a single line comment.
func CSourceWithHeader(w io.Writer, tab *scanline.Table, header string) error {
	if err := validate(tab); err != nil {
		return err
	}

	s := strings.Builder{}
	s.WriteString(header)
	s.WriteString("\n\n")
	s.WriteString("#include \"../includes/ppu_renderer_lookup.h\"\n")
	s.WriteString("#include \"../includes/ppu.h\"\n\n")
	s.WriteString(fmt.Sprintf("const render_events_t scanline_lookup[%d] =\n", len(tab)))
	s.WriteString("{\n")
	for _, e := range tab {
		s.WriteString(fmt.Sprintf("\t%-30s %30s %d\n", fmt.Sprintf("&%s,", CFunction(e.Action)), "// cycle", e.Cycle))
	}
	s.WriteString("};\n\n")

	return write(w, s.String())
}
