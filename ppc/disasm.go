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

package ppc

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/arch/ppc64/ppc64asm"
)

// Disassemble a single instruction word at the address. Words that cannot be
// decoded are returned as a data directive.
func Disassemble(addr uint32, instr uint32) string {
	if id, param, ok := DecodeVmcall(instr); ok {
		return fmt.Sprintf("vmcall %d,%d", id, param)
	}

	var b [4]byte
	binary.BigEndian.PutUint32(b[:], instr)

	inst, err := ppc64asm.Decode(b[:], binary.BigEndian)
	if err != nil {
		return fmt.Sprintf(".long 0x%08x", instr)
	}

	return ppc64asm.GNUSyntax(inst, uint64(addr))
}
