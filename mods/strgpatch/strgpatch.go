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

// Package strgpatch replaces the prompt shown when Gandrayda grabs the
// player in Metroid Prime 3. The original prompt refers to a motion control
// that doesn't exist with a mouse and keyboard.
//
// A vmcall is installed in the string table lookup function. When the key
// being looked up is the Gandrayda prompt, the callback searches the string
// table for the key and redirects the matching entry.
package strgpatch

import (
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/mod"
	"github.com/primehack/primehack/ppc"
	"github.com/primehack/primehack/vmcall"
)

// Name of the mod as registered with the mod manager.
const Name = "strg_patch"

// Replacement is the string written over the original prompt.
const Replacement = "&just=center;Mash Jump [&image=0x5FC17B1F30BAA7AE;] to shake off Gandrayda!"

// Key is the string table key of the prompt.
const Key = "ShakeOffGandrayda"

// the table entry is always redirected to the Prime 3 standalone address,
// whatever the version parameter of the vmcall.
const patchedTableAddr = uint32(0x80684800)

type location struct {
	replace uint32
	lookup  uint32
	version uint32
}

func locate(g game.Game, r game.Region) (location, bool) {
	switch g {
	case game.Prime3Standalone:
		if r == game.NTSCU {
			return location{replace: 0x80684800, lookup: 0x803cdd64, version: 2}, true
		}
	case game.Prime3:
		switch r {
		case game.NTSCU:
			return location{replace: 0x80676c00, lookup: 0x803cc3f4, version: 0}, true
		case game.PAL:
			return location{replace: 0x8067a400, lookup: 0x803cbb10, version: 1}, true
		}
	}
	return location{}, false
}

// Patch is the STRG patch mod.
type Patch struct {
	mod.Base

	vmcalls *vmcall.Registry

	// the callback is registered once for the lifetime of the mod
	id         uint32
	registered bool

	replaceAddr uint32
}

// NewPatch is the preferred method of initialisation for the Patch type.
// The callback is registered with the vmcall registry when the mod is first
// initialised for a Prime 3 game.
func NewPatch(vmcalls *vmcall.Registry) *Patch {
	return &Patch{
		vmcalls: vmcalls,
	}
}

// InitMod implements the mod.Mod interface.
func (p *Patch) InitMod(g game.Game, r game.Region) bool {
	p.replaceAddr = 0

	loc, ok := locate(g, r)
	if !ok {
		return true
	}

	if !p.registered {
		p.id, p.registered = p.vmcalls.Register(patchEntry)
		if !p.registered {
			return false
		}
	}

	p.replaceAddr = loc.replace
	p.AddCodeChange(loc.lookup, ppc.GenVmcall(p.id, loc.version))

	return true
}

// RunMod implements the mod.Mod interface.
func (p *Patch) RunMod(g game.Game, _ game.Region) {
	switch g {
	case game.Prime3, game.Prime3Standalone:
		if p.replaceAddr != 0 {
			p.WriteString(Replacement, p.replaceAddr)
		}
	}
}

// search the string table for the key. the table is an array of (key
// pointer, value index) pairs, sorted by key. returns the address of the
// first pair with a key that is not less than the search key.
func search(bus memory.Bus, key string, header uint32) uint32 {
	left := bus.Read32(header + 0x14)
	dist := int32(bus.Read32(header + 0x8))

	for dist > 0 {
		mid := (dist * 4) &^ 0x7
		half := dist >> 1
		test := memory.ReadString(bus, bus.Read32(left+uint32(mid)))
		if test < key {
			dist -= 1 + half
			left += uint32(mid) + 8
		} else {
			dist = half
		}
	}

	return left
}

// patchEntry is called in place of the first instruction of the string
// table lookup. r4 points to the key and r31 to the table header. r3 must
// be set to r31 to complete the replaced instruction.
func patchEntry(bus memory.Bus, regs *ppc.Registers, version uint32) {
	header := regs.GPR[31]

	key := memory.ReadString(bus, regs.GPR[4])
	if key == Key {
		res := search(bus, key, header)
		if memory.ReadString(bus, bus.Read32(res)) == key {
			idx := bus.Read32(res + 4)
			tbl := bus.Read32(header + 0x1c)
			bus.Write32(patchedTableAddr, tbl+4*idx)
			logger.Logf(logger.Allow, Name, "redirected %s (version %d)", key, version)
		}
	}

	regs.GPR[3] = regs.GPR[31]
}
