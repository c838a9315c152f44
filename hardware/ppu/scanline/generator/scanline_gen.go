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

//go:generate go run scanline_gen.go

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jetsetilly/ppulookup/emit"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/logger"
)

const generatedGoFile = "../table.go"

func generate() error {
	// building from the timing rather than with Build() so that an invalid
	// default timing is reported as an error rather than a panic
	tab, err := scanline.BuildTiming(scanline.NTSC)
	if err != nil {
		return err
	}

	var output bytes.Buffer
	err = emit.GoSource(&output, &tab, "scanline")
	if err != nil {
		return err
	}

	// create output file (over-writing) if it already exists
	f, err := os.Create(generatedGoFile)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(output.Bytes())
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "generator", "%s written", generatedGoFile)

	return nil
}

func main() {
	logger.SetEcho(os.Stdout)

	err := generate()
	if err != nil {
		fmt.Printf("error during scanline table generation: %s\n", err)
		os.Exit(10)
	}
}
