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

package emulation

import (
	"sync"

	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/ppc"
)

// Core is a minimal abstraction of the emulated console. It has guest RAM
// and a register file and nothing else.
type Core struct {
	crit sync.Mutex

	ram  *memory.RAM
	regs ppc.Registers

	// number of frames completed
	frameNum int
}

// NewCore is the preferred method of initialisation for the Core type.
func NewCore(extendedMEM1 bool) *Core {
	return &Core{
		ram: memory.NewRAM(extendedMEM1),
	}
}

// Lock the core and return a Guard for exclusive access to memory and
// registers. The core is locked until Guard.Release() is called.
func (c *Core) Lock() *Guard {
	c.crit.Lock()
	return &Guard{core: c}
}

// Frame locks the core and calls the function with the Guard. Pending
// instruction cache invalidations are processed after the function returns.
// The number of invalidated cache blocks is returned.
func (c *Core) Frame(f func(*Guard)) int {
	g := c.Lock()
	defer g.Release()
	f(g)
	c.frameNum++
	return c.ram.ICache.Flush()
}

// FrameNum returns the number of frames completed through the Frame()
// function.
func (c *Core) FrameNum() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.frameNum
}

// Guard is the token that allows access to the Core. It is the only way of
// reaching guest memory.
type Guard struct {
	core     *Core
	released bool
}

// Valid returns true if the guard may be used to access the Core. A nil Guard
// is never valid.
func (g *Guard) Valid() bool {
	return g != nil && !g.released
}

// Release the guard and unlock the Core. Releasing a guard more than once has
// no effect.
func (g *Guard) Release() {
	if !g.Valid() {
		return
	}
	g.released = true
	g.core.crit.Unlock()
}

// Bus returns the memory bus. Returns nil if the guard is not valid.
func (g *Guard) Bus() memory.Bus {
	if !g.Valid() {
		return nil
	}
	return g.core.ram
}

// RAM returns the concrete memory implementation. Returns nil if the guard is
// not valid.
func (g *Guard) RAM() *memory.RAM {
	if !g.Valid() {
		return nil
	}
	return g.core.ram
}

// Registers returns the register file. Returns nil if the guard is not valid.
func (g *Guard) Registers() *ppc.Registers {
	if !g.Valid() {
		return nil
	}
	return &g.core.regs
}

// Replace the contents of memory and the register file. Used when restoring
// a snapshot.
func (g *Guard) Replace(ram *memory.RAM, regs ppc.Registers) {
	if !g.Valid() {
		return
	}
	g.core.ram = ram
	g.core.regs = regs
}
