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

// Package ppc contains the small number of PowerPC instruction encoders
// required to patch guest code at runtime, a representation of the guest
// register file and a disassembler for the purposes of logging and the
// command line tool.
//
// All instructions are 32bit big-endian words. The encoders do not check
// that a branch target is within range of the 26bit displacement field.
package ppc
