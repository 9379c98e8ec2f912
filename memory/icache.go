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

import "sort"

// ICache records scheduled instruction cache invalidations. The host
// emulator processes the invalidations between frames. The RAM type flushes
// them when the Flush() function is called.
type ICache struct {
	pending map[uint32]bool

	// total number of invalidations processed since creation
	Total int
}

// Schedule an address for invalidation. Invalidation is per 32 byte cache
// block so nearby addresses are coalesced.
func (ic *ICache) Schedule(addr uint32) {
	if ic.pending == nil {
		ic.pending = make(map[uint32]bool)
	}
	ic.pending[addr&^0x1f] = true
}

// Pending returns the sorted list of cache blocks that are waiting to be
// invalidated.
func (ic *ICache) Pending() []uint32 {
	p := make([]uint32, 0, len(ic.pending))
	for a := range ic.pending {
		p = append(p, a)
	}
	sort.Slice(p, func(i, j int) bool { return p[i] < p[j] })
	return p
}

// Flush processes all pending invalidations and returns the number of blocks
// that were invalidated.
func (ic *ICache) Flush() int {
	n := len(ic.pending)
	ic.Total += n
	clear(ic.pending)
	return n
}
