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

package elfmod

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"io"

	"github.com/primehack/primehack/curated"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/symbols"
)

type blockWriter interface {
	WriteBlock(addr uint32, data []byte)
}

type mapper interface {
	Mapped(addr uint32) bool
}

// segments are only loaded into extended MEM1, above the memory used by the
// game. the range is checked before any memory is allocated for it.
func checkSegment(bus memory.Bus, vaddr uint64, memsz uint64) error {
	const top = uint64(memory.MEM1Origin) + uint64(memory.ExtendedMEM1Size)
	if vaddr < uint64(memory.MEM1Memtop) || vaddr+memsz > top {
		return curated.Errorf("outside of extended MEM1 (%08x to %08x)", vaddr, vaddr+memsz)
	}
	if m, ok := bus.(mapper); ok && memsz > 0 {
		if !m.Mapped(uint32(vaddr)) || !m.Mapped(uint32(vaddr+memsz-1)) {
			return curated.Errorf("not mapped (%08x to %08x)", vaddr, vaddr+memsz)
		}
	}
	return nil
}

// LoadELF copies the loadable segments of the ELF file into guest memory
// and adds the function and object symbols to the symbol table.
func LoadELF(bus memory.Bus, path string, syms *symbols.Table) error {
	f, err := elf.Open(path)
	if err != nil {
		return curated.Errorf("ELF: %v", err)
	}
	defer f.Close()

	// sanity checks on ELF data
	if f.FileHeader.Machine != elf.EM_PPC {
		return curated.Errorf("ELF: is not PowerPC")
	}
	if f.FileHeader.ByteOrder != binary.BigEndian {
		return curated.Errorf("ELF: is not big-endian")
	}
	if f.FileHeader.Class != elf.ELFCLASS32 {
		return curated.Errorf("ELF: is not 32bit")
	}
	if f.FileHeader.Version != elf.EV_CURRENT {
		return curated.Errorf("ELF: unknown version")
	}
	if f.FileHeader.Type != elf.ET_EXEC {
		return curated.Errorf("ELF: is not executable")
	}

	for i, p := range f.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}

		if p.Filesz > p.Memsz {
			return curated.Errorf("ELF: segment %d: file size larger than memory size", i)
		}
		if err := checkSegment(bus, p.Vaddr, p.Memsz); err != nil {
			return curated.Errorf("ELF: segment %d: %v", i, err)
		}
		data := make([]byte, p.Memsz)

		_, err := io.ReadFull(p.Open(), data[:p.Filesz])
		if err != nil {
			return curated.Errorf("ELF: segment %d: %v", i, err)
		}

		addr := uint32(p.Vaddr)
		if bw, ok := bus.(blockWriter); ok {
			bw.WriteBlock(addr, data)
		} else {
			for j, b := range data {
				bus.Write8(addr+uint32(j), b)
			}
		}

		logger.Logf(logger.Allow, "ELF", "segment %d: %08x to %08x (%d)", i, addr, addr+uint32(len(data)), len(data))
	}

	if syms == nil {
		return nil
	}

	elfSyms, err := f.Symbols()
	if err != nil {
		if errors.Is(err, elf.ErrNoSymbols) {
			logger.Log(logger.Allow, "ELF", "no symbols")
			return nil
		}
		return curated.Errorf("ELF: %v", err)
	}

	var n int
	for _, s := range elfSyms {
		if s.Section == elf.SHN_UNDEF {
			continue
		}
		switch elf.ST_TYPE(s.Info) {
		case elf.STT_FUNC, elf.STT_OBJECT:
			syms.Add(uint32(s.Value), s.Name, false)
			n++
		}
	}

	logger.Logf(logger.Allow, "ELF", "%d symbols", n)

	return nil
}
