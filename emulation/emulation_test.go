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

package emulation_test

import (
	"testing"

	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/test"
)

func TestGuard(t *testing.T) {
	core := emulation.NewCore(false)

	g := core.Lock()
	test.ExpectSuccess(t, g.Valid())
	test.DemandSuccess(t, g.Bus() != nil)
	g.Bus().Write32(0x80000000, 0x474d3845)
	g.Registers().GPR[13] = 0x80500000
	g.Release()

	test.ExpectFailure(t, g.Valid())
	test.ExpectSuccess(t, g.Bus() == nil)
	test.ExpectSuccess(t, g.Registers() == nil)

	// releasing twice does not unlock twice
	g.Release()

	g = core.Lock()
	test.ExpectEquality(t, g.Bus().Read32(0x80000000), uint32(0x474d3845))
	test.ExpectEquality(t, g.Registers().GPR[13], uint32(0x80500000))
	g.Release()

	var nilGuard *emulation.Guard
	test.ExpectFailure(t, nilGuard.Valid())
	test.ExpectSuccess(t, nilGuard.Bus() == nil)
}

func TestFrame(t *testing.T) {
	core := emulation.NewCore(false)

	n := core.Frame(func(g *emulation.Guard) {
		g.Bus().Write32(0x80001000, 0x60000000)
		g.Bus().InvalidateICache(0x80001000)
		g.Bus().InvalidateICache(0x80002000)
	})
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, core.FrameNum(), 1)

	n = core.Frame(func(g *emulation.Guard) {})
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, core.FrameNum(), 2)
}
