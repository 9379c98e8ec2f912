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

package vmcall

import (
	"sync"

	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/ppc"
)

// Callback is a native function that can be called from guest code.
type Callback func(bus memory.Bus, regs *ppc.Registers, param uint32)

// the number of IDs that can be encoded in a vmcall instruction.
const maxCallbacks = 0x400

// Registry of callbacks. The zero value is ready to use.
type Registry struct {
	crit      sync.Mutex
	callbacks []Callback
}

// Register a callback and return the ID that should be used with
// ppc.GenVmcall(). The boolean is false if there are no free IDs.
func (r *Registry) Register(cb Callback) (uint32, bool) {
	r.crit.Lock()
	defer r.crit.Unlock()

	if len(r.callbacks) >= maxCallbacks {
		logger.Log(logger.Allow, "vmcall", "no free IDs")
		return 0, false
	}

	r.callbacks = append(r.callbacks, cb)
	return uint32(len(r.callbacks) - 1), true
}

// Len returns the number of registered callbacks.
func (r *Registry) Len() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return len(r.callbacks)
}

// Dispatch calls the callback encoded in the instruction. Returns false if
// the instruction is not a vmcall or if the ID is not registered.
func (r *Registry) Dispatch(guard *emulation.Guard, instr uint32) bool {
	if !guard.Valid() {
		logger.Log(logger.Allow, "vmcall", "dispatch outside of critical section")
		return false
	}

	id, param, ok := ppc.DecodeVmcall(instr)
	if !ok {
		return false
	}

	r.crit.Lock()
	var cb Callback
	if int(id) < len(r.callbacks) {
		cb = r.callbacks[id]
	}
	r.crit.Unlock()

	if cb == nil {
		logger.Logf(logger.Allow, "vmcall", "unregistered ID (%d)", id)
		return false
	}

	cb(guard.Bus(), guard.Registers(), param)
	return true
}

// Execute dispatches the instruction at the address in guest memory. If the
// instruction is a vmcall the program counter is advanced past it.
func (r *Registry) Execute(guard *emulation.Guard, addr uint32) bool {
	if !guard.Valid() {
		logger.Log(logger.Allow, "vmcall", "dispatch outside of critical section")
		return false
	}

	regs := guard.Registers()
	regs.PC = addr
	if !r.Dispatch(guard, guard.Bus().ReadInstruction(addr)) {
		return false
	}
	regs.PC += 4
	return true
}
