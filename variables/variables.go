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

package variables

import (
	"github.com/primehack/primehack/curated"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/ppc"
)

// BaseAddress is the address of the first variable.
const BaseAddress = uint32(0x80004164)

// MaxVariables is the number of variables that can be registered.
const MaxVariables = 45

// slot size of each variable.
const slotSize = 4

// Manager of guest variables. The zero value is ready to use.
type Manager struct {
	vars map[string]uint32
}

// Register a variable. Registering a name that already exists is not an
// error.
func (m *Manager) Register(name string) error {
	if m.vars == nil {
		m.vars = make(map[string]uint32)
	}

	if _, ok := m.vars[name]; ok {
		return nil
	}

	if len(m.vars) >= MaxVariables {
		return curated.Errorf("variables: too many variables registered (%s)", name)
	}

	m.vars[name] = BaseAddress + uint32(len(m.vars))*slotSize
	return nil
}

// Reset removes all variables.
func (m *Manager) Reset() {
	clear(m.vars)
}

// Len returns the number of registered variables.
func (m *Manager) Len() int {
	return len(m.vars)
}

// GetAddress returns the address of the variable or zero if the variable
// does not exist.
func (m *Manager) GetAddress(name string) uint32 {
	return m.vars[name]
}

// SetU8 writes a byte to the variable. Unknown variables are ignored.
func (m *Manager) SetU8(bus memory.Bus, name string, v uint8) {
	if a, ok := m.vars[name]; ok {
		bus.Write8(a, v)
	}
}

// SetU32 writes a word to the variable. Unknown variables are ignored.
func (m *Manager) SetU32(bus memory.Bus, name string, v uint32) {
	if a, ok := m.vars[name]; ok {
		bus.Write32(a, v)
	}
}

// SetF32 writes a float to the variable. Unknown variables are ignored.
func (m *Manager) SetF32(bus memory.Bus, name string, v float32) {
	if a, ok := m.vars[name]; ok {
		memory.WriteF32(bus, a, v)
	}
}

// GetUint reads the variable as a word. Unknown variables return zero.
func (m *Manager) GetUint(bus memory.Bus, name string) uint32 {
	if a, ok := m.vars[name]; ok {
		return bus.Read32(a)
	}
	return 0
}

// GetFloat reads the variable as a float. Unknown variables return zero.
func (m *Manager) GetFloat(bus memory.Bus, name string) float32 {
	if a, ok := m.vars[name]; ok {
		return memory.ReadF32(bus, a)
	}
	return 0
}

// MakeLisOri returns the two instructions that load the address of the
// variable into the register.
func (m *Manager) MakeLisOri(gpr uint32, name string) (uint32, uint32) {
	a := m.GetAddress(name)
	return ppc.GenLis(gpr, a>>16), ppc.GenOri(gpr, gpr, a&0xffff)
}
