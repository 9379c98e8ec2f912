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
	"encoding/binary"
	"sort"

	"github.com/primehack/primehack/logger"
)

// PageSize is the granularity of RAM allocation.
const PageSize = 0x1000

// RAM is a sparse implementation of the Bus interface. Pages are allocated
// on first write. Reading an unallocated page returns zero.
type RAM struct {
	mem1Size uint32
	pages    map[uint32][]byte

	// ICache records invalidation requests made through the Bus interface
	ICache ICache

	// the number of accesses to addresses that are not mapped
	Faults int
}

// NewRAM is the preferred method of initialisation for the RAM type. If
// extended is true then MEM1 is extended to ExtendedMEM1Size.
func NewRAM(extended bool) *RAM {
	ram := &RAM{
		mem1Size: MEM1Size,
		pages:    make(map[uint32][]byte),
	}
	if extended {
		ram.mem1Size = ExtendedMEM1Size
	}
	return ram
}

// Extended returns true if MEM1 has been extended.
func (ram *RAM) Extended() bool {
	return ram.mem1Size > MEM1Size
}

// Mapped returns true if the address is backed by RAM. This differs from
// IsValid() in that it takes extended MEM1 into account.
func (ram *RAM) Mapped(addr uint32) bool {
	_, ok := physical(addr, ram.mem1Size)
	return ok
}

func (ram *RAM) page(addr uint32, alloc bool) ([]byte, uint32, bool) {
	phys, ok := physical(addr, ram.mem1Size)
	if !ok {
		ram.Faults++
		logger.Logf(logger.Allow, "memory", "unmapped address %08x", addr)
		return nil, 0, false
	}

	idx := phys / PageSize
	p, ok := ram.pages[idx]
	if !ok {
		if !alloc {
			return nil, phys % PageSize, true
		}
		p = make([]byte, PageSize)
		ram.pages[idx] = p
	}

	return p, phys % PageSize, true
}

func (ram *RAM) read(addr uint32, data []byte) {
	for i := range data {
		p, o, ok := ram.page(addr+uint32(i), false)
		if ok && p != nil {
			data[i] = p[o]
		} else {
			data[i] = 0
		}
	}
}

func (ram *RAM) write(addr uint32, data []byte) {
	for i := range data {
		p, o, ok := ram.page(addr+uint32(i), true)
		if ok {
			p[o] = data[i]
		}
	}
}

// Read8 implements the Bus interface.
func (ram *RAM) Read8(addr uint32) uint8 {
	var b [1]byte
	ram.read(addr, b[:])
	return b[0]
}

// Read16 implements the Bus interface.
func (ram *RAM) Read16(addr uint32) uint16 {
	var b [2]byte
	ram.read(addr, b[:])
	return binary.BigEndian.Uint16(b[:])
}

// Read32 implements the Bus interface.
func (ram *RAM) Read32(addr uint32) uint32 {
	var b [4]byte
	ram.read(addr, b[:])
	return binary.BigEndian.Uint32(b[:])
}

// Read64 implements the Bus interface.
func (ram *RAM) Read64(addr uint32) uint64 {
	var b [8]byte
	ram.read(addr, b[:])
	return binary.BigEndian.Uint64(b[:])
}

// ReadInstruction implements the Bus interface.
func (ram *RAM) ReadInstruction(addr uint32) uint32 {
	return ram.Read32(addr)
}

// Write8 implements the Bus interface.
func (ram *RAM) Write8(addr uint32, data uint8) {
	ram.write(addr, []byte{data})
}

// Write16 implements the Bus interface.
func (ram *RAM) Write16(addr uint32, data uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], data)
	ram.write(addr, b[:])
}

// Write32 implements the Bus interface.
func (ram *RAM) Write32(addr uint32, data uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], data)
	ram.write(addr, b[:])
}

// Write64 implements the Bus interface.
func (ram *RAM) Write64(addr uint32, data uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], data)
	ram.write(addr, b[:])
}

// InvalidateICache implements the Bus interface.
func (ram *RAM) InvalidateICache(addr uint32) {
	ram.ICache.Schedule(addr)
}

// WriteBlock copies data into RAM starting at the address.
func (ram *RAM) WriteBlock(addr uint32, data []byte) {
	ram.write(addr, data)
}

// ReadBlock copies RAM into data starting at the address.
func (ram *RAM) ReadBlock(addr uint32, data []byte) {
	ram.read(addr, data)
}

// Pages calls the function for every allocated page, in address order. The
// address is the page's cached virtual address. The data slice must not be
// retained.
func (ram *RAM) Pages(f func(addr uint32, data []byte) error) error {
	idx := make([]uint32, 0, len(ram.pages))
	for i := range ram.pages {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(i, j int) bool { return idx[i] < idx[j] })

	for _, i := range idx {
		if err := f(virtual(i*PageSize), ram.pages[i]); err != nil {
			return err
		}
	}

	return nil
}

// Allocated returns the number of bytes of RAM that have been allocated.
func (ram *RAM) Allocated() int {
	return len(ram.pages) * PageSize
}
