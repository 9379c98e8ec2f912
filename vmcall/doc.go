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

// Package vmcall maintains the list of native callbacks that guest code can
// call. A callback is called when the processor executes a vmcall
// instruction, which encodes the callback's ID and a parameter. See
// ppc.GenVmcall() for the encoding.
//
// Mods register a callback and patch a vmcall instruction into guest code.
// The callback has access to guest memory and to the register file and
// returns to the instruction following the vmcall.
package vmcall
