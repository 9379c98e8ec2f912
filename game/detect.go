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
	"strings"

	"github.com/primehack/primehack/memory"
)

// address of the game ID and the disc revision.
const (
	IDAddress       = uint32(0x80000000)
	RevisionAddress = uint32(0x80000007)
	idLen           = 6
)

// Signature identifies a title by the presence of a word in memory.
type Signature struct {
	Address uint32
	Word    uint32
	Game    Game
}

// Detector identifies the game and region from memory.
type Detector struct {
	// signatures are tested in order for the Trilogy disc. the first match
	// selects the game
	Signatures []Signature

	force  Game
	forced bool
}

// Force detection to the game, while still using memory to decide the
// region. Forcing InvalidGame removes the override.
func (d *Detector) Force(g Game) {
	d.force = g
	d.forced = g != InvalidGame
}

func regionFromID(c byte) Region {
	switch c {
	case 'E':
		return NTSCU
	case 'P':
		return PAL
	case 'J':
		return NTSCJ
	}
	return InvalidRegion
}

// ReadID returns the game ID from memory.
func ReadID(bus memory.Bus) string {
	var s strings.Builder
	for i := range uint32(idLen) {
		c := bus.Read8(IDAddress + i)
		if c == 0x00 {
			break
		}
		s.WriteByte(c)
	}
	return s.String()
}

// Detect returns the game and region running in memory.
func (d *Detector) Detect(bus memory.Bus) (Game, Region) {
	id := ReadID(bus)
	if len(id) != idLen {
		return InvalidGame, InvalidRegion
	}

	region := regionFromID(id[3])
	if region == InvalidRegion || id[4:] != "01" {
		return InvalidGame, InvalidRegion
	}

	g := InvalidGame

	switch id[:3] {
	case "GM8":
		g = Prime1GCN
		if region == NTSCU {
			switch bus.Read8(RevisionAddress) {
			case 1:
				g = Prime1GCNR1
			case 2:
				g = Prime1GCNR2
			}
		}
	case "G2M":
		g = Prime2GCN
	case "RM3":
		g = Prime3Standalone
	case "R3M":
		if region == NTSCJ {
			return InvalidGame, InvalidRegion
		}
		g = Menu
		for _, s := range d.Signatures {
			if bus.Read32(s.Address) == s.Word {
				g = s.Game
				break
			}
		}
	}

	if g == InvalidGame {
		return InvalidGame, InvalidRegion
	}

	if d.forced {
		g = d.force
	}

	return g, region
}
