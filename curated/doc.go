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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that return
// curated errors export their patterns as constants so that callers can test
// for them with Is() and Has():
//
//	const InvalidTiming = "timing: %v"
//
//	err := curated.Errorf(InvalidTiming, "chunk count")
//	if curated.Is(err, InvalidTiming) {
//		fmt.Println("true")
//	}
//
// Has() is similar but checks if the pattern occurs somewhere in the error
// chain.
//
//	f := curated.Errorf("generator: %v", err)
//	curated.Has(f, InvalidTiming) // true
//	curated.Is(f, InvalidTiming)  // false
//
// The Error() implementation normalises the chain so that it does not contain
// duplicate adjacent parts. For example, if a function wraps an error with
// "emit: %v" and so does the caller, the message reads "emit: ..." once and not
// "emit: emit: ...".
//
// Curated errors also support the errors.Unwrap() protocol. The first value
// that is itself an error is considered to be the wrapped error.
package curated
