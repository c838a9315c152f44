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

//go:build !windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// DefaultWidth is the width assumed for output that is not a terminal.
const DefaultWidth = 80

// TermGeometry contains the dimensions of a terminal.
type TermGeometry struct {
	// characters
	Rows int
	Cols int
}

// IsTerminal returns true if the file is connected to a terminal. Attributes
// can only be read from a terminal device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// Geometry returns the dimensions of the terminal connected to the file.
func Geometry(f *os.File) (TermGeometry, error) {
	if f == nil {
		return TermGeometry{}, fmt.Errorf("easyterm: no file")
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return TermGeometry{}, fmt.Errorf("easyterm: error updating terminal geometry information (%w)", err)
	}
	return TermGeometry{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// Width returns the number of columns of the terminal connected to the file.
// DefaultWidth is returned if the file is not a terminal or if the terminal
// reports no width.
func Width(f *os.File) int {
	g, err := Geometry(f)
	if err != nil || g.Cols <= 0 {
		return DefaultWidth
	}
	return g.Cols
}
