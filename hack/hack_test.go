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

package hack_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/primehack/primehack/addressdb"
	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/hack"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/mod"
	"github.com/primehack/primehack/ppc"
	"github.com/primehack/primehack/test"
)

// the order in which mods are run, shared by all test mods.
var runOrder []string

type patchMod struct {
	mod.Base
	addr  uint32
	inits int
	runs  int
	games []game.Game
}

func (m *patchMod) RunMod(g game.Game, _ game.Region) {
	m.runs++
	runOrder = append(runOrder, m.Name())
}

func (m *patchMod) InitMod(g game.Game, _ game.Region) bool {
	m.inits++
	m.games = append(m.games, g)
	m.AddCodeChange(m.addr, 0x38600001)
	return true
}

func setID(core *emulation.Core, id string) {
	core.Frame(func(g *emulation.Guard) {
		memory.WriteString(g.Bus(), game.IDAddress, id)
	})
}

func TestRunActiveMods(t *testing.T) {
	core := emulation.NewCore(false)
	mgr := hack.NewManager(addressdb.NewDB(), nil)

	a := &patchMod{addr: 0x80001000}
	b := &patchMod{addr: 0x80002000}
	mgr.AddMod("b", b)
	mgr.AddMod("a", a)

	// no game
	core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, mgr.ActiveGame(), game.InvalidGame)
	test.ExpectEquality(t, a.inits, 0)

	core.Frame(func(g *emulation.Guard) {
		g.Bus().Write32(0x80001000, ppc.Nop)
	})
	setID(core, "GM8E01")

	runOrder = runOrder[:0]
	n := core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, mgr.ActiveGame(), game.Prime1GCN)
	test.ExpectEquality(t, mgr.ActiveRegion(), game.NTSCU)
	test.ExpectEquality(t, a.inits, 1)
	test.ExpectEquality(t, a.runs, 1)
	test.ExpectEquality(t, n, 2)

	// run order is registration order
	test.DemandEquality(t, len(runOrder), 2)
	test.ExpectEquality(t, runOrder[0], "b")
	test.ExpectEquality(t, runOrder[1], "a")

	core.Frame(func(g *emulation.Guard) {
		test.ExpectEquality(t, g.Bus().Read32(0x80001000), uint32(0x38600001))
	})

	// no changes to apply on the second frame
	n = core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, a.inits, 1)
	test.ExpectEquality(t, a.runs, 2)
	test.ExpectEquality(t, n, 0)

	// patches are reapplied if the game overwrites them
	core.Frame(func(g *emulation.Guard) {
		g.Bus().Write32(0x80001000, ppc.Nop)
	})
	n = core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, n, 1)

	// change of game resets and reinitialises
	setID(core, "G2ME01")
	core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, a.inits, 2)
	test.DemandEquality(t, len(a.games), 2)
	test.ExpectEquality(t, a.games[1], game.Prime2GCN)
	test.ExpectEquality(t, len(a.CodeChanges()), 1)
}

func TestDisable(t *testing.T) {
	core := emulation.NewCore(false)
	mgr := hack.NewManager(nil, nil)

	a := &patchMod{addr: 0x80001000}
	mgr.AddMod("a", a)

	core.Frame(func(g *emulation.Guard) {
		g.Bus().Write32(0x80001000, ppc.Nop)
		memory.WriteString(g.Bus(), game.IDAddress, "GM8P01")
	})

	core.Frame(mgr.RunActiveMods)
	test.ExpectSuccess(t, mgr.IsModActive("a"))

	mgr.DisableMod("a")
	test.ExpectFailure(t, mgr.IsModActive("a"))
	core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, a.runs, 1)

	// patch is reverted
	core.Frame(func(g *emulation.Guard) {
		test.ExpectEquality(t, g.Bus().Read32(0x80001000), ppc.Nop)
	})

	mgr.SetModEnabled("a", true)
	core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, a.runs, 2)
	core.Frame(func(g *emulation.Guard) {
		test.ExpectEquality(t, g.Bus().Read32(0x80001000), uint32(0x38600001))
	})

	mgr.DisableModWithoutNotify("a")
	test.ExpectFailure(t, mgr.IsModActive("a"))
	mgr.EnableModWithoutNotify("a")
	test.ExpectSuccess(t, mgr.IsModActive("a"))

	test.ExpectFailure(t, mgr.IsModActive("missing"))
	test.ExpectSuccess(t, mgr.GetMod("missing") == nil)
}

func TestShutdown(t *testing.T) {
	core := emulation.NewCore(false)
	mgr := hack.NewManager(nil, nil)

	a := &patchMod{addr: 0x80001000}
	b := &patchMod{addr: 0x80002000}
	mgr.AddMod("a", a)
	mgr.AddMod("b", b)
	mgr.DisableMod("b")

	setID(core, "GM8E01")
	core.Frame(mgr.RunActiveMods)

	core.Frame(mgr.Shutdown)
	test.ExpectFailure(t, mgr.IsModActive("a"))
	test.ExpectFailure(t, a.Initialized())
	core.Frame(func(g *emulation.Guard) {
		test.ExpectEquality(t, g.Bus().Read32(0x80001000), uint32(0))
	})

	mgr.RestoreModStates()
	test.ExpectSuccess(t, mgr.IsModActive("a"))
	test.ExpectFailure(t, mgr.IsModActive("b"))

	// mods are reinitialised after a shutdown
	core.Frame(mgr.RunActiveMods)
	test.ExpectEquality(t, a.inits, 2)
}

func TestUpdateModStates(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	err := os.WriteFile(pth, []byte("*** do not edit this file by hand ***\nmods.b.enabled :: false\n"), 0644)
	test.DemandSuccess(t, err)

	p, err := hack.NewPreferences(pth)
	test.DemandSuccess(t, err)

	mgr := hack.NewManager(nil, p)
	mgr.AddMod("a", &patchMod{})
	mgr.AddMod("b", &patchMod{})
	test.DemandSuccess(t, p.Load())

	test.ExpectEquality(t, len(p.Names()), 2)

	mgr.UpdateModStates()
	test.ExpectSuccess(t, mgr.IsModActive("a"))
	test.ExpectFailure(t, mgr.IsModActive("b"))

	en, ok := p.Enabled("b")
	test.DemandSuccess(t, ok)
	test.DemandSuccess(t, en.Set(true))
	mgr.UpdateModStates()
	test.ExpectSuccess(t, mgr.IsModActive("b"))

	test.DemandSuccess(t, p.Save())
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "*** do not edit this file by hand ***\nmods.a.enabled :: true\nmods.b.enabled :: true\n")
}
