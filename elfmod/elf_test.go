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

package elfmod_test

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/primehack/primehack/elfmod"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/symbols"
	"github.com/primehack/primehack/test"
)

type testSym struct {
	name string
	addr uint32
	typ  elf.SymType
}

// buildELF returns a big-endian ELF32 executable with a single loadable
// segment and a symbol table.
func buildELF(machine elf.Machine, vaddr uint32, segment []byte, memsz uint32, syms []testSym) []byte {
	const (
		ehsize = 52
		phsize = 32
		shsize = 40
		shnum  = 5
		segOff = 0x100
	)

	be := binary.BigEndian

	var strtab bytes.Buffer
	strtab.WriteByte(0)

	var symtab bytes.Buffer
	symtab.Write(make([]byte, 16))

	for _, s := range syms {
		var e [16]byte
		be.PutUint32(e[0:], uint32(strtab.Len()))
		be.PutUint32(e[4:], s.addr)
		be.PutUint32(e[8:], 4)
		e[12] = byte(elf.STB_GLOBAL)<<4 | byte(s.typ)
		be.PutUint16(e[14:], 1)
		symtab.Write(e[:])

		strtab.WriteString(s.name)
		strtab.WriteByte(0)
	}

	shstrtab := []byte("\x00.text\x00.symtab\x00.strtab\x00.shstrtab\x00")

	align := func(n int) int { return (n + 3) &^ 3 }
	symOff := align(segOff + len(segment))
	strOff := symOff + symtab.Len()
	shstrOff := align(strOff + strtab.Len())
	shOff := align(shstrOff + len(shstrtab))

	out := make([]byte, shOff+shnum*shsize)

	copy(out, []byte{0x7f, 'E', 'L', 'F', byte(elf.ELFCLASS32), byte(elf.ELFDATA2MSB), byte(elf.EV_CURRENT)})
	be.PutUint16(out[16:], uint16(elf.ET_EXEC))
	be.PutUint16(out[18:], uint16(machine))
	be.PutUint32(out[20:], uint32(elf.EV_CURRENT))
	be.PutUint32(out[24:], vaddr)
	be.PutUint32(out[28:], ehsize)
	be.PutUint32(out[32:], uint32(shOff))
	be.PutUint16(out[40:], ehsize)
	be.PutUint16(out[42:], phsize)
	be.PutUint16(out[44:], 1)
	be.PutUint16(out[46:], shsize)
	be.PutUint16(out[48:], shnum)
	be.PutUint16(out[50:], shnum-1)

	ph := out[ehsize:]
	be.PutUint32(ph[0:], uint32(elf.PT_LOAD))
	be.PutUint32(ph[4:], segOff)
	be.PutUint32(ph[8:], vaddr)
	be.PutUint32(ph[12:], vaddr)
	be.PutUint32(ph[16:], uint32(len(segment)))
	be.PutUint32(ph[20:], memsz)
	be.PutUint32(ph[24:], uint32(elf.PF_R|elf.PF_W|elf.PF_X))
	be.PutUint32(ph[28:], 4)

	copy(out[segOff:], segment)
	copy(out[symOff:], symtab.Bytes())
	copy(out[strOff:], strtab.Bytes())
	copy(out[shstrOff:], shstrtab)

	section := func(i int, name uint32, typ elf.SectionType, flags elf.SectionFlag, addr uint32, off int, size int, link uint32, info uint32, entsize uint32) {
		sh := out[shOff+i*shsize:]
		be.PutUint32(sh[0:], name)
		be.PutUint32(sh[4:], uint32(typ))
		be.PutUint32(sh[8:], uint32(flags))
		be.PutUint32(sh[12:], addr)
		be.PutUint32(sh[16:], uint32(off))
		be.PutUint32(sh[20:], uint32(size))
		be.PutUint32(sh[24:], link)
		be.PutUint32(sh[28:], info)
		be.PutUint32(sh[32:], 4)
		be.PutUint32(sh[36:], entsize)
	}

	section(1, 1, elf.SHT_PROGBITS, elf.SHF_ALLOC|elf.SHF_EXECINSTR|elf.SHF_WRITE, vaddr, segOff, len(segment), 0, 0, 0)
	section(2, 7, elf.SHT_SYMTAB, 0, 0, symOff, symtab.Len(), 3, 1, 16)
	section(3, 15, elf.SHT_STRTAB, 0, 0, strOff, strtab.Len(), 0, 0, 0)
	section(4, 23, elf.SHT_STRTAB, 0, 0, shstrOff, len(shstrtab), 0, 0, 0)

	return out
}

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	pth := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func TestLoadELF(t *testing.T) {
	dir := t.TempDir()

	segment := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02}
	syms := []testSym{
		{name: "main", addr: 0x81c00000, typ: elf.STT_FUNC},
		{name: "counter", addr: 0x81c00004, typ: elf.STT_OBJECT},
		{name: "file_marker", addr: 0x81c00002, typ: elf.STT_FILE},
	}
	pth := writeFile(t, dir, "test.elf", buildELF(elf.EM_PPC, 0x81c00000, segment, 0x10, syms))

	ram := memory.NewRAM(true)
	ram.Write32(0x81c00008, 0xffffffff)
	ram.Write32(0x81c0000c, 0xffffffff)

	tbl := symbols.NewTable()
	test.DemandSuccess(t, elfmod.LoadELF(ram, pth, tbl))

	test.ExpectEquality(t, ram.Read32(0x81c00000), uint32(0xdeadbeef))
	test.ExpectEquality(t, ram.Read16(0x81c00004), uint16(0x0102))

	// memory beyond the file data is zeroed
	test.ExpectEquality(t, ram.Read16(0x81c00006), uint16(0))
	test.ExpectEquality(t, ram.Read32(0x81c00008), uint32(0))
	test.ExpectEquality(t, ram.Read32(0x81c0000c), uint32(0))

	// only functions and objects are imported
	a, ok := tbl.Search("main")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x81c00000))
	a, ok = tbl.Search("counter")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x81c00004))
	_, ok = tbl.Search("file_marker")
	test.ExpectFailure(t, ok)
}

func TestLoadELFSanity(t *testing.T) {
	dir := t.TempDir()
	ram := memory.NewRAM(false)

	pth := writeFile(t, dir, "arm.elf", buildELF(elf.EM_ARM, 0x80400000, []byte{1, 2, 3, 4}, 4, nil))
	test.ExpectFailure(t, elfmod.LoadELF(ram, pth, nil))

	pth = writeFile(t, dir, "junk.elf", []byte("not an elf file"))
	test.ExpectFailure(t, elfmod.LoadELF(ram, pth, nil))

	test.ExpectFailure(t, elfmod.LoadELF(ram, filepath.Join(dir, "missing.elf"), nil))
}

func TestLoadELFPlacement(t *testing.T) {
	dir := t.TempDir()
	segment := []byte{1, 2, 3, 4}

	// game memory is never overwritten
	ram := memory.NewRAM(true)
	ram.Write32(0x80003100, 0x60000000)
	pth := writeFile(t, dir, "game.elf", buildELF(elf.EM_PPC, 0x80003100, segment, 4, nil))
	test.ExpectFailure(t, elfmod.LoadELF(ram, pth, nil))
	test.ExpectEquality(t, ram.Read32(0x80003100), uint32(0x60000000))

	// unmapped address
	pth = writeFile(t, dir, "unmapped.elf", buildELF(elf.EM_PPC, 0x70000000, segment, 4, nil))
	test.ExpectFailure(t, elfmod.LoadELF(ram, pth, nil))
	test.ExpectEquality(t, ram.Faults, 0)

	// segment running past the end of extended MEM1
	pth = writeFile(t, dir, "long.elf", buildELF(elf.EM_PPC, 0x83fffff0, segment, 0x100, nil))
	test.ExpectFailure(t, elfmod.LoadELF(ram, pth, nil))

	// extended region without extended memory
	pth = writeFile(t, dir, "small.elf", buildELF(elf.EM_PPC, 0x81c00000, segment, 4, nil))
	test.ExpectFailure(t, elfmod.LoadELF(memory.NewRAM(false), pth, nil))

	test.ExpectEquality(t, ram.Allocated(), memory.PageSize)
}
