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

package memory

import (
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Bus is the interface to guest memory.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Read64(addr uint32) uint64

	// ReadInstruction reads a 32bit word through the instruction side of the
	// memory system. the value is the same as Read32() for the purposes of
	// the mod engine but the distinction is kept because the host emulator
	// may return a value from a patched instruction cache.
	ReadInstruction(addr uint32) uint32

	Write8(addr uint32, data uint8)
	Write16(addr uint32, data uint16)
	Write32(addr uint32, data uint32)
	Write64(addr uint32, data uint64)

	// InvalidateICache schedules the invalidation of any translated code at
	// the address. it must be called after an instruction is patched.
	InvalidateICache(addr uint32)
}

// ReadF32 reads a 32bit float from the Bus.
func ReadF32(bus Bus, addr uint32) float32 {
	return math.Float32frombits(bus.Read32(addr))
}

// ReadF64 reads a 64bit float from the Bus.
func ReadF64(bus Bus, addr uint32) float64 {
	return math.Float64frombits(bus.Read64(addr))
}

// WriteF32 writes a 32bit float to the Bus.
func WriteF32(bus Bus, addr uint32, data float32) {
	bus.Write32(addr, math.Float32bits(data))
}

// WriteF64 writes a 64bit float to the Bus.
func WriteF64(bus Bus, addr uint32, data float64) {
	bus.Write64(addr, math.Float64bits(data))
}

// maximum length of string returned by ReadString()
const maxStringLen = 0x1000

// ReadString reads a null terminated string from the Bus. The string is
// capped at a sensible length in case the terminator is missing.
func ReadString(bus Bus, addr uint32) string {
	s := strings.Builder{}
	for range maxStringLen {
		c := bus.Read8(addr)
		if c == 0x00 {
			break
		}
		s.WriteByte(c)
		addr++
	}
	return s.String()
}

// WriteString writes the string to the Bus followed by a null terminator.
func WriteString(bus Bus, addr uint32, s string) {
	for i := range len(s) {
		bus.Write8(addr+uint32(i), s[i])
	}
	bus.Write8(addr+uint32(len(s)), 0x00)
}

// Align value a to the next multiple of b. The b value must be a power of two.
func Align[I constraints.Integer](a, b I) I {
	return (a + b - 1) &^ (b - 1)
}
