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

// Package snapshot saves and restores the state of the emulation Core. A
// snapshot file is a fixed size big-endian header followed by a snappy
// compressed stream containing the register file and every allocated page of
// guest memory.
//
// Unallocated pages are not stored. Restoring a snapshot replaces memory
// entirely so unallocated pages read as zero after the restore.
package snapshot
