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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/ppulookup/terminal/ansi"
	"github.com/jetsetilly/ppulookup/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("Red", "normal", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;49m")

	s, err = ansi.ColorBuild("", "blue", "bold", false, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[104;1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)
}

func TestColorBuildErrors(t *testing.T) {
	_, err := ansi.ColorBuild("mauve", "", "", false, false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "mauve", "", false, false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "", "wobbly", false, false)
	test.ExpectFailure(t, err)
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["green"], "\033[92;49m")
	test.ExpectEquality(t, ansi.DimPens["green"], "\033[32;49m")
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
	test.ExpectEquality(t, len(ansi.Pens), 7)
}
