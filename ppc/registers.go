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

import "fmt"

// SPR identifies a special purpose register.
type SPR int

// List of special purpose registers referenced by the mod engine.
const (
	LR     SPR = 8
	CTR    SPR = 9
	IBAT2U SPR = 532
	IBAT2L SPR = 533
	DBAT2U SPR = 540
	DBAT2L SPR = 541
)

// BATValid is the bit in the upper BAT register that makes the mapping
// valid in supervisor mode.
const BATValid = uint32(0x100)

// NumSPR is the size of the SPR address space.
const NumSPR = 1024

// Registers is the guest register file.
type Registers struct {
	GPR [32]uint32
	SPR [NumSPR]uint32
	PC  uint32
}

func (r *Registers) String() string {
	return fmt.Sprintf("PC=%08x LR=%08x r1=%08x r3=%08x r4=%08x r13=%08x r31=%08x",
		r.PC, r.SPR[LR], r.GPR[1], r.GPR[3], r.GPR[4], r.GPR[13], r.GPR[31])
}

// Reset all registers to zero.
func (r *Registers) Reset() {
	*r = Registers{}
}
