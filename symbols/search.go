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

package symbols

import "sort"

// Search returns the address of the symbol.
func (t *Table) Search(symbol string) (uint32, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	a, ok := t.names[symbol]
	return a, ok
}

// ReverseSearch returns the symbol for the address.
func (t *Table) ReverseSearch(addr uint32) (string, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	s, ok := t.entries[addr]
	return s, ok
}

// Nearest returns the symbol at or immediately before the address, along
// with the offset of the address from the symbol.
func (t *Table) Nearest(addr uint32) (string, uint32, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	i := sort.Search(len(t.idx), func(i int) bool {
		return t.idx[i] > addr
	})
	if i == 0 {
		return "", 0, false
	}

	a := t.idx[i-1]
	return t.entries[a], addr - a, true
}
