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

// Package addressdb is the registry of game addresses. Addresses are keyed by
// game and name and have a value for each region the game was released in.
//
// Static addresses are plain values. Dynamic addresses are pointer chains
// that are resolved against guest memory every time they are looked up. A
// dynamic address has a base, which is the name of another address (static
// or dynamic), and a list of offsets. The first offset is added to the base
// and each subsequent offset is added to the word that the previous address
// points to.
//
// A chain that passes through a null or invalid pointer resolves to zero.
// Callers treat zero as meaning that the address is unavailable this frame.
//
// The built-in tables for all supported games are added with the Init()
// function.
package addressdb
