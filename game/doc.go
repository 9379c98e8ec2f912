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

// Package game identifies the game and region running in the emulator. The
// mod engine uses the identity to select address tables and to decide which
// mods are applicable.
//
// Detection is by the game ID found at the start of MEM1. For the Trilogy
// disc the game ID only identifies the menu. The in-game title is
// distinguished by a list of memory signatures supplied by the caller.
package game
