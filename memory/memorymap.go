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

// the standard memory map of the console as seen through the cached mirrors.
const (
	MEM1Origin = uint32(0x80000000)
	MEM1Size   = uint32(0x01800000)
	MEM1Memtop = MEM1Origin + MEM1Size

	MEM2Origin = uint32(0x90000000)
	MEM2Size   = uint32(0x04000000)
	MEM2Memtop = MEM2Origin + MEM2Size

	// extended MEM1 as used by the ELF mod loader
	ExtendedMEM1Size = uint32(0x04000000)
)

// the physical address of MEM2. physical MEM1 begins at zero.
const mem2Physical = uint32(0x10000000)

// IsValid returns true if the address is in the standard (not extended)
// memory map. The address database uses this to decide whether a pointer is
// safe to follow.
func IsValid(addr uint32) bool {
	return (addr >= MEM1Origin && addr < MEM1Memtop) || (addr >= MEM2Origin && addr < MEM2Memtop)
}

// physical translates a virtual address to a physical address. Both the
// cached and uncached mirrors are supported. The mem1Size argument allows the
// extended MEM1 region.
func physical(addr uint32, mem1Size uint32) (uint32, bool) {
	switch addr & 0xf0000000 {
	case 0x80000000, 0xc0000000:
		p := addr & 0x0fffffff
		if p < mem1Size {
			return p, true
		}
	case 0x90000000, 0xd0000000:
		p := addr & 0x0fffffff
		if p < MEM2Size {
			return p | mem2Physical, true
		}
	}
	return 0, false
}

// virtual is the reverse of physical(). The cached mirror is always returned.
func virtual(phys uint32) uint32 {
	if phys&mem2Physical == mem2Physical {
		return (phys &^ mem2Physical) | MEM2Origin
	}
	return phys | MEM1Origin
}
