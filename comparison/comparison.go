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

// Package comparison compares two text files line by line. It is used to check
// an emitted table against a checked-in copy.
//
// Only as many lines as there are in the shorter file are compared. Each line
// is trimmed of leading and trailing white space before comparison. Every
// compared pair is written to the output and comparison stops at the first
// pair that differs.
package comparison

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/ppulookup/curated"
)

// Result of a comparison.
type Result struct {
	// the number of line pairs compared, including the mismatched pair
	Compared int

	// line number of the first mismatch. zero if there was no mismatch
	Mismatch int
}

// Match returns true if no mismatch was found.
func (r Result) Match() bool {
	return r.Mismatch == 0
}

func (r Result) String() string {
	if r.Match() {
		return fmt.Sprintf("%d lines match", r.Compared)
	}
	return fmt.Sprintf("mismatch at line %d", r.Mismatch)
}

// Curated error patterns.
const (
	ComparisonError = "comparison: %v"
	FileError       = "comparison: %s: %v"
)

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Lines compares the contents of a and b. Compared pairs are written to out.
func Lines(a io.Reader, b io.Reader, out io.Writer) (Result, error) {
	var res Result

	la, err := readLines(a)
	if err != nil {
		return res, curated.Errorf(ComparisonError, err)
	}
	lb, err := readLines(b)
	if err != nil {
		return res, curated.Errorf(ComparisonError, err)
	}

	n := len(la)
	if len(lb) < n {
		n = len(lb)
	}

	for i := 0; i < n; i++ {
		res.Compared++
		if la[i] != lb[i] {
			res.Mismatch = i + 1
			_, err = fmt.Fprintf(out, "%s   !=   %s \tLine:  %d\n", la[i], lb[i], i+1)
			if err != nil {
				return res, curated.Errorf(ComparisonError, err)
			}
			break // for loop
		}
		_, err = fmt.Fprintf(out, "%s        %s \tLine:  %d\n", la[i], lb[i], i+1)
		if err != nil {
			return res, curated.Errorf(ComparisonError, err)
		}
	}

	return res, nil
}

// Files compares the two named files.
func Files(pathA string, pathB string, out io.Writer) (Result, error) {
	fa, err := os.Open(pathA)
	if err != nil {
		return Result{}, curated.Errorf(FileError, pathA, err)
	}
	defer fa.Close()

	fb, err := os.Open(pathB)
	if err != nil {
		return Result{}, curated.Errorf(FileError, pathB, err)
	}
	defer fb.Close()

	return Lines(fa, fb, out)
}
