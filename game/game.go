// This file is part of PrimeHack.
//
// PrimeHack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PrimeHack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PrimeHack.  If not, see <https://www.gnu.org/licenses/>.

package game

import (
	"github.com/primehack/primehack/curated"
)

// Game identifies a supported title, or a menu.
type Game int

// List of games.
const (
	Menu Game = iota
	MenuPrime1
	MenuPrime2
	Prime1
	Prime2
	Prime3
	Prime3Standalone
	Prime1GCN
	Prime1GCNR1
	Prime1GCNR2
	Prime2GCN
	InvalidGame
)

var gameNames = [...]string{
	"MENU",
	"MENU_PRIME_1",
	"MENU_PRIME_2",
	"PRIME_1",
	"PRIME_2",
	"PRIME_3",
	"PRIME_3_STANDALONE",
	"PRIME_1_GCN",
	"PRIME_1_GCN_R1",
	"PRIME_1_GCN_R2",
	"PRIME_2_GCN",
	"INVALID_GAME",
}

func (g Game) String() string {
	if g < Menu || g > InvalidGame {
		return gameNames[InvalidGame]
	}
	return gameNames[g]
}

// Valid returns true if the game is not InvalidGame.
func (g Game) Valid() bool {
	return g >= Menu && g < InvalidGame
}

// GCN returns true if the game is one of the Gamecube titles.
func (g Game) GCN() bool {
	switch g {
	case Prime1GCN, Prime1GCNR1, Prime1GCNR2, Prime2GCN:
		return true
	}
	return false
}

// ParseGame is the reverse of the String() function. Case is significant.
func ParseGame(s string) (Game, error) {
	for i, n := range gameNames {
		if n == s && Game(i) != InvalidGame {
			return Game(i), nil
		}
	}
	return InvalidGame, curated.Errorf("game: unrecognised game (%s)", s)
}

// Games returns a list of all valid games.
func Games() []Game {
	g := make([]Game, 0, InvalidGame)
	for i := Menu; i < InvalidGame; i++ {
		g = append(g, i)
	}
	return g
}

// Region of a game release. The order of regions is significant, it is the
// order in which per-region values are given to the address database.
type Region int

// List of regions.
const (
	NTSCU Region = iota
	PAL
	NTSCJ
	InvalidRegion
)

// NumRegions is the number of valid regions.
const NumRegions = int(InvalidRegion)

var regionNames = [...]string{
	"NTSC_U",
	"PAL",
	"NTSC_J",
	"INVALID_REGION",
}

func (r Region) String() string {
	if r < NTSCU || r > InvalidRegion {
		return regionNames[InvalidRegion]
	}
	return regionNames[r]
}

// Valid returns true if the region is not InvalidRegion.
func (r Region) Valid() bool {
	return r >= NTSCU && r < InvalidRegion
}

// ParseRegion is the reverse of the String() function.
func ParseRegion(s string) (Region, error) {
	for i, n := range regionNames {
		if n == s && Region(i) != InvalidRegion {
			return Region(i), nil
		}
	}
	return InvalidRegion, curated.Errorf("game: unrecognised region (%s)", s)
}
