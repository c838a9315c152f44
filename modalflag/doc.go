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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments. This allows the same argument
// list to be worked through one mode at a time.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("GENERATE", "SHOW", "COMPARE")
//	_, _ = md.Parse()
//
// After Parse() the selected mode is available with the Mode() function. The
// first sub-mode is the default and is selected if no mode is named on the
// command line. Sub-mode comparisons are case insensitive.
//
// Each mode is then given its own flags by calling NewMode() followed by the
// Add*() functions and a further call to Parse():
//
//	switch md.Mode() {
//	case "SHOW":
//		md.NewMode()
//		chunk := md.AddInt("chunk", -1, "show only the numbered chunk")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		show(*chunk, md.RemainingArgs())
//	}
//
// Help for the current mode is printed automatically when the -help flag is
// given. The ParseHelp result indicates that this has happened.
package modalflag
