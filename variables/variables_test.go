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

package variables_test

import (
	"fmt"
	"testing"

	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/test"
	"github.com/primehack/primehack/variables"
)

func TestRegister(t *testing.T) {
	var m variables.Manager

	test.ExpectSuccess(t, m.Register("a"))
	test.ExpectSuccess(t, m.Register("b"))
	test.ExpectSuccess(t, m.Register("a"))
	test.ExpectEquality(t, m.Len(), 2)
	test.ExpectEquality(t, m.GetAddress("a"), variables.BaseAddress)
	test.ExpectEquality(t, m.GetAddress("b"), variables.BaseAddress+4)
	test.ExpectEquality(t, m.GetAddress("c"), uint32(0))

	for i := m.Len(); i < variables.MaxVariables; i++ {
		test.DemandSuccess(t, m.Register(fmt.Sprintf("v%d", i)))
	}
	test.ExpectFailure(t, m.Register("overflow"))

	m.Reset()
	test.ExpectEquality(t, m.Len(), 0)
}

func TestReadWrite(t *testing.T) {
	var m variables.Manager
	ram := memory.NewRAM(false)

	test.DemandSuccess(t, m.Register("flag"))
	test.DemandSuccess(t, m.Register("speed"))

	m.SetU32(ram, "flag", 0x12345678)
	test.ExpectEquality(t, m.GetUint(ram, "flag"), uint32(0x12345678))
	m.SetU8(ram, "flag", 0xff)
	test.ExpectEquality(t, m.GetUint(ram, "flag"), uint32(0xff345678))

	m.SetF32(ram, "speed", 2.5)
	test.ExpectEquality(t, m.GetFloat(ram, "speed"), float32(2.5))

	// unknown variables
	m.SetU32(ram, "missing", 1)
	test.ExpectEquality(t, m.GetUint(ram, "missing"), uint32(0))
}

func TestMakeLisOri(t *testing.T) {
	var m variables.Manager
	test.DemandSuccess(t, m.Register("a"))
	lis, ori := m.MakeLisOri(5, "a")
	test.ExpectEquality(t, lis, uint32(0x3ca08000))
	test.ExpectEquality(t, ori, uint32(0x60a54164))
}
