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

package mod

import (
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/ppc"
)

// bus returns the memory bus if the mod has an active guard. Otherwise the
// contract violation is logged and nil is returned.
func (b *Base) bus() memory.Bus {
	if !b.guard.Valid() {
		logger.Log(logger.Allow, b.tag(), "attempted active mod code outside of critical section")
		return nil
	}
	return b.guard.Bus()
}

// Read8 reads a byte from guest memory.
func (b *Base) Read8(addr uint32) uint8 {
	if bus := b.bus(); bus != nil {
		return bus.Read8(addr)
	}
	return 0
}

// Read16 reads a big-endian half-word from guest memory.
func (b *Base) Read16(addr uint32) uint16 {
	if bus := b.bus(); bus != nil {
		return bus.Read16(addr)
	}
	return 0
}

// Read32 reads a big-endian word from guest memory.
func (b *Base) Read32(addr uint32) uint32 {
	if bus := b.bus(); bus != nil {
		return bus.Read32(addr)
	}
	return 0
}

// Read64 reads a big-endian double-word from guest memory.
func (b *Base) Read64(addr uint32) uint64 {
	if bus := b.bus(); bus != nil {
		return bus.Read64(addr)
	}
	return 0
}

// ReadInstruction reads a word through the instruction side of the memory
// system.
func (b *Base) ReadInstruction(addr uint32) uint32 {
	if bus := b.bus(); bus != nil {
		return bus.ReadInstruction(addr)
	}
	return 0
}

// ReadF32 reads a single precision float from guest memory.
func (b *Base) ReadF32(addr uint32) float32 {
	if bus := b.bus(); bus != nil {
		return memory.ReadF32(bus, addr)
	}
	return 0
}

// ReadF64 reads a double precision float from guest memory.
func (b *Base) ReadF64(addr uint32) float64 {
	if bus := b.bus(); bus != nil {
		return memory.ReadF64(bus, addr)
	}
	return 0
}

// ReadString reads a null terminated string from guest memory.
func (b *Base) ReadString(addr uint32) string {
	if bus := b.bus(); bus != nil {
		return memory.ReadString(bus, addr)
	}
	return ""
}

// Write8 writes a byte to guest memory.
func (b *Base) Write8(v uint8, addr uint32) {
	if bus := b.bus(); bus != nil {
		bus.Write8(addr, v)
	}
}

// Write16 writes a big-endian half-word to guest memory.
func (b *Base) Write16(v uint16, addr uint32) {
	if bus := b.bus(); bus != nil {
		bus.Write16(addr, v)
	}
}

// Write32 writes a big-endian word to guest memory.
func (b *Base) Write32(v uint32, addr uint32) {
	if bus := b.bus(); bus != nil {
		bus.Write32(addr, v)
	}
}

// Write64 writes a big-endian double-word to guest memory.
func (b *Base) Write64(v uint64, addr uint32) {
	if bus := b.bus(); bus != nil {
		bus.Write64(addr, v)
	}
}

// WriteF32 writes a single precision float to guest memory.
func (b *Base) WriteF32(v float32, addr uint32) {
	if bus := b.bus(); bus != nil {
		memory.WriteF32(bus, addr, v)
	}
}

// WriteF64 writes a double precision float to guest memory.
func (b *Base) WriteF64(v float64, addr uint32) {
	if bus := b.bus(); bus != nil {
		memory.WriteF64(bus, addr, v)
	}
}

// WriteString writes a null terminated string to guest memory.
func (b *Base) WriteString(s string, addr uint32) {
	if bus := b.bus(); bus != nil {
		memory.WriteString(bus, addr, s)
	}
}

// Registers returns the guest register file. Returns nil if there is no
// active guard.
func (b *Base) Registers() *ppc.Registers {
	if !b.guard.Valid() {
		logger.Log(logger.Allow, b.tag(), "attempted active mod code outside of critical section")
		return nil
	}
	return b.guard.Registers()
}
