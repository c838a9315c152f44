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

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"golang.org/x/tools/imports"
)

// GeneratedBanner is the first line of a generated Go source file.
const GeneratedBanner = "// generated code - do not change"

// the name of the table variable in generated Go source
const lookupName = "Lookup"

// GoSource writes the table as Go source for the named package. If the package
// is not the scanline package then the type and action names are qualified
// with the scanline package name and the import is added.
func GoSource(w io.Writer, tab *scanline.Table, pkg string) error {
	if err := validate(tab); err != nil {
		return err
	}

	if pkg == "" {
		pkg = "scanline"
	}

	var qualifier string
	if pkg != "scanline" {
		qualifier = "scanline."
	}

	s := strings.Builder{}
	s.WriteString(GeneratedBanner)
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	if qualifier != "" {
		s.WriteString("import \"github.com/jetsetilly/ppulookup/hardware/ppu/scanline\"\n\n")
	}
	s.WriteString(fmt.Sprintf("// %s is the table of actions for every cycle of a rendering scanline.\n", lookupName))
	s.WriteString(fmt.Sprintf("var %s = %sTable{\n", lookupName, qualifier))
	for _, e := range tab {
		s.WriteString(fmt.Sprintf("{Cycle: %d, Action: %s%s},\n", e.Cycle, qualifier, e.Action))
	}
	s.WriteString("}\n")

	// format with the imports package rather than go/format. the result is
	// the same as gofmt for a file that has all the imports it needs
	formatted, err := imports.Process("table.go", []byte(s.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return curated.Errorf(EmitError, err)
	}

	return write(w, string(formatted))
}
