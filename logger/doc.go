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

// Package logger is the central log for the application. Log entries are
// tagged, usually by the package making the entry, and adjacent duplicate
// entries are squashed.
//
//	logger.Log(logger.Allow, "scanline", "table built")
//	logger.Logf(logger.Allow, "emit", "%d entries written", n)
//
// Every request is accompanied by a Permission. logger.Allow always permits
// the entry. Other implementations can be used to suppress logging in
// contexts where it is not wanted.
//
// The log is kept in memory and can be written out with Write() or Tail(). It
// can also be echoed to an io.Writer as entries are made with SetEcho().
package logger
