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

// primary opcodes.
const (
	opVmcall = 1
	opAddis  = 15
	opOri    = 24
	opBranch = 18
)

// Nop is the preferred PowerPC no-operation instruction (ori r0,r0,0).
const Nop = uint32(0x60000000)

// mask for the displacement field of an I-form branch.
const branchMask = 0x03fffffc

// GenBranch encodes an unconditional relative branch from src to dst.
func GenBranch(src uint32, dst uint32) uint32 {
	return opBranch<<26 | ((dst - src) & branchMask)
}

// GenBranchLink encodes a relative branch and link from src to dst.
func GenBranchLink(src uint32, dst uint32) uint32 {
	return GenBranch(src, dst) | 1
}

// GenLis encodes "lis rD,imm". Which is "addis rD,0,imm".
func GenLis(reg uint32, imm uint32) uint32 {
	return opAddis<<26 | reg<<21 | (imm & 0xffff)
}

// GenOri encodes "ori rA,rS,imm".
func GenOri(dst uint32, src uint32, imm uint32) uint32 {
	return opOri<<26 | src<<21 | dst<<16 | (imm & 0xffff)
}

// BranchOffset returns the signed displacement of an I-form branch.
func BranchOffset(instr uint32) uint32 {
	off := instr & branchMask
	if off&0x02000000 == 0x02000000 {
		off |= 0xfc000000
	}
	return off
}

// IsBranch returns true if the instruction is an I-form branch.
func IsBranch(instr uint32) bool {
	return instr>>26 == opBranch
}

// IsBranchLink returns true if the instruction is an I-form relative branch
// and link. Only this form of branch can be hooked.
func IsBranchLink(instr uint32) bool {
	return IsBranch(instr) && instr&0x3 == 0x1
}

// GenVmcall encodes a call to a native callback. The primary opcode is not
// used by the Gekko/Broadway processors so the word can never be confused
// with a real instruction.
func GenVmcall(id uint32, param uint32) uint32 {
	return opVmcall<<26 | (id&0x3ff)<<16 | (param & 0xffff)
}

// DecodeVmcall is the reverse of GenVmcall(). The ok value is false if the
// instruction is not a vmcall.
func DecodeVmcall(instr uint32) (id uint32, param uint32, ok bool) {
	if instr>>26 != opVmcall {
		return 0, 0, false
	}
	return (instr >> 16) & 0x3ff, instr & 0xffff, true
}
