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

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Table maps a symbol to an address. it also keeps track of the widest symbol
// in the Table.
type Table struct {
	crit sync.Mutex

	// indexed by address
	entries map[uint32]string

	// indexed by symbol. more than one symbol can refer to the same address
	// but only the name in the entries map is returned by ReverseSearch()
	names map[string]uint32

	// index of keys in entries. sortable through the sort.Interface
	idx []uint32

	// the longest symbol in the entries map
	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		entries: make(map[uint32]string),
		names:   make(map[string]uint32),
		idx:     make([]uint32, 0),
	}
}

func (t *Table) String() string {
	t.crit.Lock()
	defer t.crit.Unlock()

	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%08x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// Add a symbol to the table. If the address already has a symbol then the
// new symbol is only used for reverse searching if prefer is true. The new
// symbol can always be found with Search().
func (t *Table) Add(addr uint32, symbol string, prefer bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	t.add(addr, symbol, prefer)
}

func (t *Table) add(addr uint32, symbol string, prefer bool) {
	if symbol == "" {
		return
	}

	t.names[symbol] = addr

	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}

	if _, ok := t.entries[addr]; ok {
		// overwrite existing symbol with preferred symbol
		if prefer {
			t.entries[addr] = symbol
		}
		return
	}

	t.entries[addr] = symbol
	t.idx = append(t.idx, addr)
	sort.Sort(t)
}

// Clear all entries from the table.
func (t *Table) Clear() {
	t.crit.Lock()
	defer t.crit.Unlock()
	clear(t.entries)
	clear(t.names)
	t.idx = t.idx[:0]
	t.maxWidth = 0
}

// MaxWidth returns the length of the longest symbol in the table.
func (t *Table) MaxWidth() int {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.maxWidth
}

// Len implements the sort.Interface.
func (t *Table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t *Table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t *Table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
