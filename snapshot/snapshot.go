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

package snapshot

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/lunixbochs/struc"

	"github.com/primehack/primehack/curated"
	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/ppc"
)

// Magic identifies a snapshot file.
const Magic = "PHSS"

// Version of the snapshot format.
const Version = 1

// Header of a snapshot file.
type Header struct {
	Magic    string `struc:"[4]byte"`
	Version  uint32
	Extended bool
	ID       string `struc:"[6]byte"`
	Frame    uint32
	NumPages uint32
}

// registers as stored in the compressed stream.
type registers struct {
	GPR [32]uint32
	SPR [ppc.NumSPR]uint32
	PC  uint32
}

type page struct {
	Addr uint32
}

var options = &struc.Options{Order: binary.BigEndian}

// Write the state of the Core accessible through the guard.
func Write(w io.Writer, guard *emulation.Guard, frame int) error {
	ram := guard.RAM()
	if ram == nil {
		return curated.Errorf("snapshot: no active guard")
	}

	hdr := Header{
		Magic:    Magic,
		Version:  Version,
		Extended: ram.Extended(),
		ID:       game.ReadID(ram),
		Frame:    uint32(frame),
		NumPages: uint32(ram.Allocated() / memory.PageSize),
	}

	if err := struc.PackWithOptions(w, &hdr, options); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	zw := snappy.NewBufferedWriter(w)

	regs := guard.Registers()
	if err := struc.PackWithOptions(zw, &registers{GPR: regs.GPR, SPR: regs.SPR, PC: regs.PC}, options); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	err := ram.Pages(func(addr uint32, data []byte) error {
		if err := struc.PackWithOptions(zw, &page{Addr: addr}, options); err != nil {
			return err
		}
		_, err := zw.Write(data)
		return err
	})
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	if err := zw.Close(); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	return nil
}

// Read a snapshot. The returned memory and registers are suitable for
// passing to Guard.Replace().
func Read(r io.Reader) (Header, *memory.RAM, ppc.Registers, error) {
	var hdr Header
	var regs ppc.Registers

	if err := struc.UnpackWithOptions(r, &hdr, options); err != nil {
		return hdr, nil, regs, curated.Errorf("snapshot: %v", err)
	}
	if hdr.Magic != Magic {
		return hdr, nil, regs, curated.Errorf("snapshot: not a snapshot file")
	}
	if hdr.Version != Version {
		return hdr, nil, regs, curated.Errorf("snapshot: unsupported version (%d)", hdr.Version)
	}

	zr := snappy.NewReader(r)

	var rr registers
	if err := struc.UnpackWithOptions(zr, &rr, options); err != nil {
		return hdr, nil, regs, curated.Errorf("snapshot: %v", err)
	}
	regs.GPR = rr.GPR
	regs.SPR = rr.SPR
	regs.PC = rr.PC

	ram := memory.NewRAM(hdr.Extended)
	data := make([]byte, memory.PageSize)
	for i := uint32(0); i < hdr.NumPages; i++ {
		var p page
		if err := struc.UnpackWithOptions(zr, &p, options); err != nil {
			return hdr, nil, regs, curated.Errorf("snapshot: page %d: %v", i, err)
		}
		if _, err := io.ReadFull(zr, data); err != nil {
			return hdr, nil, regs, curated.Errorf("snapshot: page %d: %v", i, err)
		}
		if !ram.Mapped(p.Addr) {
			return hdr, nil, regs, curated.Errorf("snapshot: page %d: unmapped address %08x", i, p.Addr)
		}
		ram.WriteBlock(p.Addr, data)
	}

	return hdr, ram, regs, nil
}

// Save the state of the Core to a file.
func Save(path string, core *emulation.Core) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	defer f.Close()

	frame := core.FrameNum()

	guard := core.Lock()
	defer guard.Release()

	return Write(f, guard, frame)
}

// Load a snapshot file into the Core.
func Load(path string, core *emulation.Core) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, curated.Errorf("snapshot: %v", err)
	}
	defer f.Close()

	hdr, ram, regs, err := Read(f)
	if err != nil {
		return hdr, err
	}

	guard := core.Lock()
	defer guard.Release()
	guard.Replace(ram, regs)

	return hdr, nil
}
