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

// Package hypermode unlocks hypermode difficulty for all three games on the
// Trilogy menu.
package hypermode

import (
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/mod"
)

// Name of the mod as registered with the mod manager.
const Name = "unlock_hypermode"

// offsets of the per-game unlock flags from the menu state.
var unlockFlags = []uint32{0x68, 0xa0, 0xd8}

// Unlock is the hypermode unlock mod.
type Unlock struct {
	mod.Base

	// offset from r13 of the pointer to the menu state
	r13Offset uint32
}

// InitMod implements the mod.Mod interface.
func (u *Unlock) InitMod(_ game.Game, r game.Region) bool {
	switch r {
	case game.NTSCU:
		u.r13Offset = 0x2f94
	case game.PAL:
		u.r13Offset = 0x2f34
	default:
		u.r13Offset = 0
	}
	return true
}

// RunMod implements the mod.Mod interface.
func (u *Unlock) RunMod(g game.Game, _ game.Region) {
	if g != game.Menu || u.r13Offset == 0 {
		return
	}

	regs := u.Registers()
	if regs == nil {
		return
	}

	base := u.Read32(regs.GPR[13] - u.r13Offset)
	for _, f := range unlockFlags {
		u.Write8(1, base+f)
	}
}
