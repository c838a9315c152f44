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

package comparison_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ppulookup/comparison"
	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/emit"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/test"
)

func TestMatching(t *testing.T) {
	w := &test.CompareWriter{}
	res, err := comparison.Lines(strings.NewReader("a\n  b  \nc\n"), strings.NewReader("a\nb\nc\n"), w)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Match())
	test.ExpectEquality(t, res.Compared, 3)
	test.ExpectSuccess(t, w.Compare("a        a \tLine:  1\nb        b \tLine:  2\nc        c \tLine:  3\n"))
}

func TestMismatch(t *testing.T) {
	w := &test.CompareWriter{}
	res, err := comparison.Lines(strings.NewReader("a\nb\nc\nd\n"), strings.NewReader("a\nx\nc\n"), w)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, res.Match())
	test.ExpectEquality(t, res.Mismatch, 2)
	test.ExpectEquality(t, res.Compared, 2)
	test.ExpectSuccess(t, w.Compare("a        a \tLine:  1\nb   !=   x \tLine:  2\n"))
	test.ExpectEquality(t, res.String(), "mismatch at line 2")
}

func TestShorterFile(t *testing.T) {
	w := &test.CompareWriter{}
	res, err := comparison.Lines(strings.NewReader("a\nb\nc\n"), strings.NewReader("a\n"), w)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Match())
	test.ExpectEquality(t, res.Compared, 1)

	w.Clear()
	res, err = comparison.Lines(strings.NewReader(""), strings.NewReader("a\n"), w)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Compared, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.c")
	b := filepath.Join(dir, "b.c")

	tab := scanline.Build()
	for _, fn := range []string{a, b} {
		f, err := os.Create(fn)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, emit.CSource(f, &tab))
		test.DemandSuccess(t, f.Close())
	}

	w := &test.CompareWriter{}
	res, err := comparison.Files(a, b, w)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Match())
	test.ExpectEquality(t, res.Compared, 350)

	_, err = comparison.Files(a, filepath.Join(dir, "missing.c"), w)
	test.ExpectSuccess(t, curated.Is(err, comparison.FileError))
}
