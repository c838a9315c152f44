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
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/logger"
)

// Format of the emitted table.
type Format int

// List of valid Format values.
const (
	Go Format = iota
	C
	Listing
)

func (f Format) String() string {
	switch f {
	case Go:
		return "GO"
	case C:
		return "C"
	case Listing:
		return "LISTING"
	}
	return "unknown format"
}

// Curated error patterns.
const (
	UnknownFormat = "emit: unknown format (%s)"
	EmitError     = "emit: %v"
)

// ParseFormat returns the Format for the name. The name is case insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToUpper(name) {
	case "GO":
		return Go, nil
	case "C":
		return C, nil
	case "LISTING", "TEXT":
		return Listing, nil
	}
	return Go, curated.Errorf(UnknownFormat, name)
}

// Emit writes the table in the specified format. The pkg argument is the
// package name used by the Go format and is ignored otherwise.
func Emit(w io.Writer, f Format, tab *scanline.Table, pkg string) error {
	var err error

	switch f {
	case Go:
		err = GoSource(w, tab, pkg)
	case C:
		err = CSource(w, tab)
	case Listing:
		err = WriteListing(w, tab)
	default:
		err = curated.Errorf(UnknownFormat, strconv.Itoa(int(f)))
	}

	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "emit", "%d cycles written as %s", len(tab), f)
	return nil
}

// write the string and wrap any error. used by all emitters
func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return curated.Errorf(EmitError, err)
	}
	return nil
}

func validate(tab *scanline.Table) error {
	if err := tab.Validate(); err != nil {
		return curated.Errorf(EmitError, err)
	}
	return nil
}
