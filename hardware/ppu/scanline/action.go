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

//go:generate go run golang.org/x/tools/cmd/stringer -type=Action -output=action_string.go

package scanline

import (
	"strings"

	"github.com/jetsetilly/ppulookup/curated"
)

// Action identifies the PPU operation performed on a cycle.
type Action int

// List of valid Action values.
const (
	RestCycle Action = iota
	FetchNametable
	FetchAttribute
	FetchPatternLow
	FetchPatternHigh

	// coarse X increment of the v register
	IncrementHorizontal

	// fine Y increment of v in addition to the coarse X increment
	IncrementBoth

	// copy the horizontal bits of the t register into v
	TransferHorizontal

	FetchSprites
)

// Actions is the list of every Action in order.
var Actions = []Action{
	RestCycle,
	FetchNametable,
	FetchAttribute,
	FetchPatternLow,
	FetchPatternHigh,
	IncrementHorizontal,
	IncrementBoth,
	TransferHorizontal,
	FetchSprites,
}

// Valid returns false if the Action is not one of the listed values.
func (a Action) Valid() bool {
	return a >= RestCycle && a <= FetchSprites
}

// UnknownAction is returned by ParseAction() when the name is not recognised.
const UnknownAction = "scanline: unknown action (%s)"

// ParseAction returns the Action with the specified name. The name is
// compared against the String() value of each Action and is case insensitive.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return RestCycle, curated.Errorf(UnknownAction, name)
}
