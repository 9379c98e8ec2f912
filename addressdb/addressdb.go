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

package addressdb

import (
	"sort"

	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/memory"
)

// Offsets is a list of values in region order. A region with no value is
// absent, which is not the same as a value of zero.
type Offsets []uint32

// Triple creates Offsets with a value for every region. Negative values are
// stored as two's complement.
func Triple(ntscu, pal, ntscj int64) Offsets {
	return Offsets{uint32(ntscu), uint32(pal), uint32(ntscj)}
}

// All creates Offsets with the same value for every region.
func All(v int64) Offsets {
	return Triple(v, v, v)
}

func (o Offsets) get(r game.Region) (uint32, bool) {
	if !r.Valid() || int(r) >= len(o) {
		return 0, false
	}
	return o[r], true
}

type key struct {
	game game.Game
	name string
}

type dynamic struct {
	base string
	hops []Offsets
}

// the maximum number of dynamic bases that will be followed. protects
// against a badly registered address that refers to itself.
const maxDepth = 16

// DB is the address database.
type DB struct {
	static  map[key]Offsets
	dynamic map[key]dynamic
}

// NewDB is the preferred method of initialisation for the DB type. The
// database is empty.
func NewDB() *DB {
	return &DB{
		static:  make(map[key]Offsets),
		dynamic: make(map[key]dynamic),
	}
}

// RegisterAddress adds a static address to the database. Values are in
// region order and regions without a value are absent. Registering a name
// that is already registered for the game replaces it.
func (db *DB) RegisterAddress(g game.Game, name string, values ...int64) {
	o := make(Offsets, len(values))
	for i, v := range values {
		o[i] = uint32(v)
	}
	db.static[key{g, name}] = o
}

// RegisterDynamicAddress adds a pointer chain to the database. The base is
// the name of another address for the same game.
func (db *DB) RegisterDynamicAddress(g game.Game, name string, base string, hops ...Offsets) {
	db.dynamic[key{g, name}] = dynamic{base: base, hops: hops}
}

// LookupAddress returns the static address for the game and region. The
// boolean is false if the address is not registered or if the region is
// absent.
func (db *DB) LookupAddress(g game.Game, r game.Region, name string) (uint32, bool) {
	o, ok := db.static[key{g, name}]
	if !ok {
		return 0, false
	}
	return o.get(r)
}

// Address is a convenience function for LookupAddress(). An address that is
// not found is returned as zero.
func (db *DB) Address(g game.Game, r game.Region, name string) uint32 {
	a, ok := db.LookupAddress(g, r, name)
	if !ok {
		logger.Logf(logger.Allow, "addressdb", "%s (%s): no address for %s", g, r, name)
	}
	return a
}

// IsDynamic returns true if the named address is a pointer chain.
func (db *DB) IsDynamic(g game.Game, name string) bool {
	_, ok := db.dynamic[key{g, name}]
	return ok
}

// LookupDynamicAddress resolves the pointer chain for the game and region
// against memory. Nothing is cached. The result is zero if the chain can't be
// followed.
//
// Looking up a static address with this function returns the static value.
func (db *DB) LookupDynamicAddress(bus memory.Bus, g game.Game, r game.Region, name string) uint32 {
	return db.resolve(bus, g, r, name, 0)
}

func (db *DB) resolve(bus memory.Bus, g game.Game, r game.Region, name string, depth int) uint32 {
	if depth > maxDepth {
		logger.Logf(logger.Allow, "addressdb", "%s: address chain too deep at %s", g, name)
		return 0
	}

	if o, ok := db.static[key{g, name}]; ok {
		a, _ := o.get(r)
		return a
	}

	d, ok := db.dynamic[key{g, name}]
	if !ok {
		logger.Logf(logger.Allow, "addressdb", "%s (%s): no address for %s", g, r, name)
		return 0
	}

	if len(d.hops) == 0 {
		return 0
	}

	base := db.resolve(bus, g, r, d.base, depth+1)
	if base == 0 {
		return 0
	}

	off, ok := d.hops[0].get(r)
	if !ok {
		return 0
	}
	addr := base + off

	for _, h := range d.hops[1:] {
		off, ok := h.get(r)
		if !ok {
			return 0
		}
		if addr == 0 || !memory.IsValid(addr) {
			return 0
		}
		ptr := bus.Read32(addr)
		if ptr == 0 || !memory.IsValid(ptr) {
			return 0
		}
		addr = ptr + off
	}

	return addr
}

// Names returns the sorted list of names registered for the game. Both static
// and dynamic addresses are included.
func (db *DB) Names(g game.Game) []string {
	var n []string
	for k := range db.static {
		if k.game == g {
			n = append(n, k.name)
		}
	}
	for k := range db.dynamic {
		if k.game == g {
			n = append(n, k.name)
		}
	}
	sort.Strings(n)
	return n
}
