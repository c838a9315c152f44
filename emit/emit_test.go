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

package emit_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/emit"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/test"
)

// the generated table in the scanline package must be identical to what
// GoSource() produces now. if this fails, run go generate in the scanline
// package
func TestGoSourceIsCurrent(t *testing.T) {
	expected, err := os.ReadFile("../hardware/ppu/scanline/table.go")
	test.DemandSuccess(t, err)

	tab := scanline.Build()
	w := &test.CompareWriter{}
	test.DemandSuccess(t, emit.GoSource(w, &tab, "scanline"))
	test.ExpectSuccess(t, w.Compare(string(expected)))
}

func TestGoSourceQualified(t *testing.T) {
	tab := scanline.Build()
	w := &test.CompareWriter{}
	test.DemandSuccess(t, emit.GoSource(w, &tab, "renderer"))

	l := w.Lines()
	test.DemandEquality(t, len(l) > 8, true)
	test.ExpectEquality(t, l[0], emit.GeneratedBanner)
	test.ExpectEquality(t, l[2], "package renderer")
	test.ExpectEquality(t, l[4], "import \"github.com/jetsetilly/ppulookup/hardware/ppu/scanline\"")
	test.ExpectEquality(t, l[7], "var Lookup = scanline.Table{")
	test.ExpectEquality(t, l[8], "\t{Cycle: 0, Action: scanline.RestCycle},")
}

func TestCSource(t *testing.T) {
	expected, err := os.ReadFile("testdata/ppu_renderer_lookup.c")
	test.DemandSuccess(t, err)

	tab := scanline.Build()
	w := &test.CompareWriter{}
	test.DemandSuccess(t, emit.CSource(w, &tab))
	test.ExpectSuccess(t, w.Compare(string(expected)))

	l := w.Lines()
	test.DemandEquality(t, len(l), 350)
	test.ExpectEquality(t, l[7], "\t&rest_cycle,                                         // cycle 0")
	test.ExpectEquality(t, l[7+256], "\t&increment_v_both,                                   // cycle 256")
}

func TestCSourceHeader(t *testing.T) {
	tab := scanline.Build()
	w := &test.CompareWriter{}
	test.DemandSuccess(t, emit.CSourceWithHeader(w, &tab, "// test header"))
	test.ExpectEquality(t, w.Lines()[0], "// test header")
}

func TestCFunction(t *testing.T) {
	test.ExpectEquality(t, emit.CFunction(scanline.TransferHorizontal), "transfer_t_horizontal")
	test.ExpectEquality(t, emit.CFunction(scanline.FetchPatternHigh), "fetch_pattern_table_hi")

	// every action has a distinct function
	seen := make(map[string]bool)
	for _, a := range scanline.Actions {
		seen[emit.CFunction(a)] = true
	}
	test.ExpectEquality(t, len(seen), len(scanline.Actions))
}

func TestListing(t *testing.T) {
	tab := scanline.Build()
	w := &test.CompareWriter{}
	test.DemandSuccess(t, emit.WriteListing(w, &tab))

	l := w.Lines()
	test.DemandEquality(t, len(l), scanline.CyclesPerScanline)
	test.ExpectEquality(t, l[0], "  0 RestCycle")
	test.ExpectEquality(t, l[261], "261 FetchSprites")
	test.ExpectEquality(t, l[340], "340 FetchNametable")
}

func TestInvalidTableRefused(t *testing.T) {
	var tab scanline.Table
	for _, f := range []emit.Format{emit.Go, emit.C, emit.Listing} {
		w := &test.CompareWriter{}
		err := emit.Emit(w, f, &tab, "scanline")
		test.ExpectSuccess(t, curated.Has(err, scanline.InvalidTable), f)
		test.ExpectEquality(t, w.String(), "", f)
	}
}

func TestFormats(t *testing.T) {
	for _, f := range []emit.Format{emit.Go, emit.C, emit.Listing} {
		p, err := emit.ParseFormat(strings.ToLower(f.String()))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, f)
	}

	_, err := emit.ParseFormat("json")
	test.ExpectSuccess(t, curated.Is(err, emit.UnknownFormat))

	tab := scanline.Build()
	err = emit.Emit(&test.CompareWriter{}, emit.Format(10), &tab, "")
	test.ExpectSuccess(t, curated.Is(err, emit.UnknownFormat))
}
