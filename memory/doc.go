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

// Package memory models the guest memory of the emulated PowerPC console as
// seen by the mod engine.
//
// The Bus interface is the capability that the engine consumes. Everything
// that reads or writes guest memory (the mod base, the address database, the
// ELF loader) does so through a Bus. The RAM type is the implementation used
// when the engine runs stand-alone: against a snapshot from the command line
// or in tests.
//
// Guest memory is big-endian. The console has two physical regions, MEM1 and
// MEM2, which the game sees through the cached virtual mirrors at 0x80000000
// and 0x90000000 and the uncached mirrors at 0xc0000000 and 0xd0000000.
//
// MEM1 can be extended beyond its normal 24MB. The ELF mod loader places mods
// in the extended region for GameCube titles, where the game never looks.
package memory
