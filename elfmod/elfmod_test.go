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
	"debug/elf"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/primehack/primehack/addressdb"
	"github.com/primehack/primehack/elfmod"
	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/hack"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/mod"
	"github.com/primehack/primehack/notifications"
	"github.com/primehack/primehack/ppc"
	"github.com/primehack/primehack/test"
)

// layout of the test ELF file
const (
	elfBase        = uint32(0x81800000)
	fnTable        = elfBase
	dispatchTable  = elfBase + 0x100
	dispatchFn     = elfBase + 0x200
	restoreTable   = elfBase + 0x300
	releaseFn      = elfBase + 0x400
	shutdownSignal = elfBase + 0x500
	myFlag         = elfBase + 0x600
	count          = elfBase + 0x604
	speed          = elfBase + 0x608
	hookFn         = elfBase + 0x700
	debugOutput    = elfBase + 0x800
	elfSize        = 0x900

	cleanupPoint = uint32(0x80001000)
)

func testELF() []byte {
	segment := make([]byte, elfSize)
	segment[myFlag-elfBase] = 1
	binary.BigEndian.PutUint16(segment[count-elfBase:], 7)
	binary.BigEndian.PutUint32(segment[speed-elfBase:], math.Float32bits(2.5))
	copy(segment[debugOutput-elfBase:], "hello\x00")

	syms := []testSym{
		{"cg_fn_table", fnTable, elf.STT_OBJECT},
		{"dispatch_table", dispatchTable, elf.STT_OBJECT},
		{"cg_dispatch", dispatchFn, elf.STT_FUNC},
		{"restore_table", restoreTable, elf.STT_OBJECT},
		{"release_fn", releaseFn, elf.STT_FUNC},
		{"shutdown_signal", shutdownSignal, elf.STT_OBJECT},
		{"my_flag", myFlag, elf.STT_OBJECT},
		{"count", count, elf.STT_OBJECT},
		{"speed", speed, elf.STT_OBJECT},
		{"hook_fn", hookFn, elf.STT_FUNC},
		{"debug_output", debugOutput, elf.STT_OBJECT},
	}

	return buildELF(elf.EM_PPC, elfBase, segment, elfSize, syms)
}

const minimalModfile = `<elf> mod.elf
<callgate> cg_fn_table dispatch_table cg_dispatch restore_table
<cleanup> release_fn shutdown_signal 80001000
<cvar> my_flag bool
`

// writeMod writes the test ELF file and a modfile to a temporary directory.
// Returns the path to the modfile.
func writeMod(t *testing.T, modfile string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "mod.elf", testELF())
	return writeFile(t, dir, "test.mod", []byte(modfile))
}

type fixture struct {
	core    *emulation.Core
	mgr     *hack.Manager
	loader  *elfmod.Loader
	notices []notifications.Notice
}

func (f *fixture) Notify(notice notifications.Notice) error {
	f.notices = append(f.notices, notice)
	return nil
}

func newFixture(id string) *fixture {
	f := &fixture{
		core:   emulation.NewCore(true),
		mgr:    hack.NewManager(addressdb.NewDB(), nil),
		loader: elfmod.NewLoader(),
	}
	f.mgr.AddMod(elfmod.Name, f.loader)
	f.mgr.SetNotify(f)
	f.loader.SetNotify(f)

	f.core.Frame(func(g *emulation.Guard) {
		memory.WriteString(g.Bus(), game.IDAddress, id)
		g.Bus().Write32(cleanupPoint, ppc.Nop)
	})

	return f
}

func (f *fixture) frame() {
	f.core.Frame(f.mgr.RunActiveMods)
}

func (f *fixture) read32(addr uint32) uint32 {
	var v uint32
	f.core.Frame(func(g *emulation.Guard) {
		v = g.Bus().Read32(addr)
	})
	return v
}

func (f *fixture) write32(addr uint32, v uint32) {
	f.core.Frame(func(g *emulation.Guard) {
		g.Bus().Write32(addr, v)
	})
}

func TestMinimalModfile(t *testing.T) {
	logger.Clear()

	f := newFixture("GM8E01")
	f.loader.SetPendingModfile(writeMod(t, minimalModfile))

	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.Active)
	test.ExpectFailure(t, f.loader.ModPending())

	changes := f.loader.CodeChanges()
	test.DemandEquality(t, len(changes), 1)
	test.ExpectEquality(t, changes[0], mod.CodeChange{
		Address: cleanupPoint,
		Var:     ppc.GenBranchLink(cleanupPoint, releaseFn),
	})

	cvars := f.loader.CVarList()
	test.DemandEquality(t, len(cvars), 1)
	test.ExpectEquality(t, cvars[0].Name, "my_flag")
	test.ExpectEquality(t, cvars[0].Addr, myFlag)
	test.ExpectEquality(t, cvars[0].Type, elfmod.Boolean)
	test.ExpectEquality(t, cvars[0].Value, any(true))

	// BAT2 is enabled for the mod's memory
	f.core.Frame(func(g *emulation.Guard) {
		test.ExpectInequality(t, g.Registers().SPR[ppc.DBAT2U]&ppc.BATValid, 0)
		test.ExpectInequality(t, g.Registers().SPR[ppc.IBAT2U]&ppc.BATValid, 0)
	})

	// patches are applied on the following frame
	f.frame()
	test.ExpectEquality(t, f.read32(cleanupPoint), ppc.GenBranchLink(cleanupPoint, releaseFn))

	var output bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "Mod Output" && e.Detail == "hello" {
				output = true
			}
		}
	})
	test.ExpectSuccess(t, output)
}

func TestMissingCallgate(t *testing.T) {
	f := newFixture("GM8E01")

	modfile := strings.Replace(minimalModfile, "<callgate>", "# <callgate>", 1)
	f.loader.SetPendingModfile(writeMod(t, modfile))

	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.NotLoaded)
	test.ExpectEquality(t, len(f.loader.CodeChanges()), 0)
	test.ExpectEquality(t, len(f.loader.CVarList()), 0)
	test.ExpectFailure(t, f.loader.ModPending())

	test.DemandEquality(t, len(f.notices), 2)
	test.ExpectEquality(t, f.notices[1], notifications.NotifyModLoadFailed)
}

func TestUnresolvedCallgate(t *testing.T) {
	f := newFixture("GM8E01")

	modfile := strings.Replace(minimalModfile, "restore_table", "no_such_table", 1)
	f.loader.SetPendingModfile(writeMod(t, modfile))

	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.NotLoaded)
	test.ExpectEquality(t, len(f.loader.CodeChanges()), 0)
	test.ExpectEquality(t, len(f.loader.CVarList()), 0)
}

func TestWrongRegion(t *testing.T) {
	f := newFixture("GM8P01")
	f.loader.SetPendingModfile(writeMod(t, minimalModfile))

	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.NotLoaded)
	test.ExpectSuccess(t, f.loader.ModPending())

	// BAT2 is enabled regardless of region
	f.core.Frame(func(g *emulation.Guard) {
		test.ExpectInequality(t, g.Registers().SPR[ppc.DBAT2U]&ppc.BATValid, 0)
	})
}

func TestWrongGame(t *testing.T) {
	f := newFixture("RM3E01")
	f.loader.SetPendingModfile(writeMod(t, minimalModfile))

	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.NotLoaded)
	f.core.Frame(func(g *emulation.Guard) {
		test.ExpectEquality(t, g.Registers().SPR[ppc.DBAT2U]&ppc.BATValid, 0)
	})
}

func TestHooks(t *testing.T) {
	const (
		vfte = uint32(0x80003000)
		bl   = uint32(0x80004000)
		fs   = uint32(0x80006000)
	)

	f := newFixture("GM8E01")
	f.write32(vfte, 0x80123450)
	f.write32(bl, ppc.GenBranchLink(bl, 0x80005000))
	f.write32(fs, 0x9421fff0)

	modfile := minimalModfile + `<vthook> hook_fn 80003000
<blhook> hook_fn 80004000 # comment
<trampoline> hook_fn 80006000
<trampoline> missing_fn 80007000
`
	f.loader.SetPendingModfile(writeMod(t, modfile))
	f.frame()
	test.DemandEquality(t, f.loader.LoadState(), elfmod.Active)

	callgate := func(n uint32, orig uint32) []mod.CodeChange {
		dispatch := dispatchTable + 8*n
		cg := fnTable + 12*n
		return []mod.CodeChange{
			{Address: dispatch, Var: orig},
			{Address: dispatch + 4, Var: hookFn},
			{Address: cg, Var: ppc.GenLis(11, dispatch>>16)},
			{Address: cg + 4, Var: ppc.GenOri(11, 11, dispatch&0xffff)},
			{Address: cg + 8, Var: ppc.GenBranch(cg+8, dispatchFn)},
		}
	}

	var expected []mod.CodeChange
	expected = append(expected, mod.CodeChange{Address: cleanupPoint, Var: ppc.GenBranchLink(cleanupPoint, releaseFn)})

	expected = append(expected, callgate(0, 0x80123450)...)
	expected = append(expected, mod.CodeChange{Address: vfte, Var: fnTable})

	expected = append(expected, callgate(1, 0x80005000)...)
	expected = append(expected, mod.CodeChange{Address: bl, Var: ppc.GenBranchLink(bl, fnTable+12)})

	expected = append(expected,
		mod.CodeChange{Address: restoreTable, Var: 0x9421fff0},
		mod.CodeChange{Address: restoreTable + 4, Var: ppc.GenBranch(restoreTable+4, fs+4)},
	)
	expected = append(expected, callgate(2, restoreTable)...)
	expected = append(expected, mod.CodeChange{Address: fs, Var: ppc.GenBranch(fs, fnTable+24)})

	changes := f.loader.CodeChanges()
	test.DemandEquality(t, len(changes), len(expected))
	for i := range expected {
		test.ExpectEquality(t, changes[i], expected[i], i)
	}

	n, m := f.loader.CallgateEntries()
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, m, 1)

	f.frame()
	test.ExpectEquality(t, f.read32(vfte), fnTable)
	test.ExpectEquality(t, f.read32(fnTable+8), ppc.GenBranch(fnTable+8, dispatchFn))
}

func TestSuspendAndShutdown(t *testing.T) {
	f := newFixture("GM8E01")
	pth := writeMod(t, minimalModfile)
	f.loader.SetPendingModfile(pth)

	f.frame()
	f.frame()
	test.DemandEquality(t, f.loader.LoadState(), elfmod.Active)
	test.ExpectEquality(t, f.read32(cleanupPoint), ppc.GenBranchLink(cleanupPoint, releaseFn))

	f.loader.SetSuspended(true)
	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.Suspended)
	test.ExpectEquality(t, f.read32(shutdownSignal), uint32(3))

	f.loader.SetSuspended(false)
	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.Active)
	test.ExpectEquality(t, f.read32(shutdownSignal), uint32(0))

	// a new modfile shuts down the loaded mod
	f.loader.SetPendingModfile(pth)
	f.frame()
	test.ExpectSuccess(t, f.loader.ShuttingDown())
	test.ExpectEquality(t, f.read32(shutdownSignal), uint32(1))

	// nothing happens until the mod releases itself
	f.frame()
	test.ExpectSuccess(t, f.loader.ShuttingDown())
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.Active)

	f.write32(shutdownSignal, 2)
	f.frame()
	test.ExpectFailure(t, f.loader.ShuttingDown())
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.NotLoaded)
	test.ExpectEquality(t, len(f.loader.CodeChanges()), 0)
	test.ExpectEquality(t, f.read32(cleanupPoint), ppc.Nop)
	test.ExpectEquality(t, f.loader.State(), mod.Enabled)

	// the pending modfile is loaded on the next frame
	f.frame()
	test.ExpectEquality(t, f.loader.LoadState(), elfmod.Active)
	test.ExpectEquality(t, f.read32(shutdownSignal), uint32(0))

	expected := []notifications.Notice{
		notifications.NotifyGameChanged,
		notifications.NotifyModLoaded,
		notifications.NotifyModSuspended,
		notifications.NotifyModResumed,
		notifications.NotifyModShutdown,
		notifications.NotifyModReleased,
		notifications.NotifyModLoaded,
	}
	test.DemandEquality(t, len(f.notices), len(expected))
	for i := range expected {
		test.ExpectEquality(t, f.notices[i], expected[i], i)
	}
}

func TestCVarWrite(t *testing.T) {
	f := newFixture("GM8E01")
	f.loader.SetPendingModfile(writeMod(t, minimalModfile))
	f.frame()

	test.ExpectFailure(t, f.loader.WriteCVarRequest("my_flag", uint8(0)))
	test.ExpectFailure(t, f.loader.WriteCVarRequest("other_flag", false))

	v, ok := f.loader.GetCVarVal("my_flag")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, any(true))

	test.ExpectSuccess(t, f.loader.WriteCVarRequest("my_flag", false))
	f.frame()

	var b uint8
	f.core.Frame(func(g *emulation.Guard) {
		b = g.Bus().Read8(myFlag)
	})
	test.ExpectEquality(t, b, uint8(0))
}

func TestCVarMirror(t *testing.T) {
	f := newFixture("GM8E01")
	f.loader.SetPendingModfile(writeMod(t, minimalModfile))
	f.frame()

	// changes made by the guest are seen by the host
	f.core.Frame(func(g *emulation.Guard) {
		g.Bus().Write8(myFlag, 0)
	})
	f.frame()
	v, _ := f.loader.GetCVarVal("my_flag")
	test.ExpectEquality(t, v, any(false))

	// a host request is written once and then mirrored from the guest again
	test.ExpectSuccess(t, f.loader.WriteCVarRequest("my_flag", true))
	f.core.Frame(func(g *emulation.Guard) {
		g.Bus().Write8(myFlag, 0)
	})
	f.frame()
	f.core.Frame(func(g *emulation.Guard) {
		test.ExpectEquality(t, g.Bus().Read8(myFlag), uint8(1))
		g.Bus().Write8(myFlag, 0)
	})
	f.frame()
	v, _ = f.loader.GetCVarVal("my_flag")
	test.ExpectEquality(t, v, any(false))
}

func TestPresets(t *testing.T) {
	f := newFixture("GM8E01")

	modfile := minimalModfile + `<cvar> count i16
<cvar> speed f32
<cvar> missing i32
<cvar> bad u8
`
	pth := writeMod(t, modfile)
	presets := writeFile(t, filepath.Dir(pth), "presets.txt", []byte(`my_flag = yes
count = 300
speed=1.5
unknown = 3
`))

	f.loader.SetPendingModfile(pth)
	f.frame()

	cvars := f.loader.CVarList()
	test.DemandEquality(t, len(cvars), 3)
	test.ExpectEquality(t, cvars[0].Name, "count")
	test.ExpectEquality(t, cvars[0].Value, any(uint16(7)))
	test.ExpectEquality(t, cvars[2].Name, "speed")
	test.ExpectEquality(t, cvars[2].Value, any(float32(2.5)))

	test.DemandSuccess(t, f.loader.LoadPresets(presets))

	v, _ := f.loader.GetCVarVal("my_flag")
	test.ExpectEquality(t, v, any(true))
	v, _ = f.loader.GetCVarVal("count")
	test.ExpectEquality(t, v, any(uint16(300)))
	v, _ = f.loader.GetCVarVal("speed")
	test.ExpectEquality(t, v, any(float32(1.5)))

	// negative values wrap and trailing junk is ignored
	negative := writeFile(t, filepath.Dir(pth), "negative.txt", []byte("count = -5\nspeed = 0.25x\n"))
	test.DemandSuccess(t, f.loader.LoadPresets(negative))
	v, _ = f.loader.GetCVarVal("count")
	test.ExpectEquality(t, v, any(uint16(0xfffb)))
	v, _ = f.loader.GetCVarVal("speed")
	test.ExpectEquality(t, v, any(float32(0.25)))

	f.frame()
	var n uint16
	f.core.Frame(func(g *emulation.Guard) {
		n = g.Bus().Read16(count)
	})
	test.ExpectEquality(t, n, uint16(0xfffb))

	test.ExpectFailure(t, f.loader.LoadPresets(filepath.Join(filepath.Dir(pth), "missing.txt")))
}

func TestPresetsOnLoad(t *testing.T) {
	f := newFixture("GM8E01")
	pth := writeMod(t, minimalModfile)
	presets := writeFile(t, filepath.Dir(pth), "presets.txt", []byte("my_flag = false\n"))

	f.loader.SetPresetsFile(presets)
	f.loader.SetPendingModfile(pth)
	f.frame()

	v, _ := f.loader.GetCVarVal("my_flag")
	test.ExpectEquality(t, v, any(false))
}

func TestPreferences(t *testing.T) {
	dir := t.TempDir()
	l := elfmod.NewLoader()

	p, err := elfmod.NewPreferences(l, filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Modfile.Set("/tmp/test.mod"))
	test.ExpectEquality(t, l.PendingModfile(), "/tmp/test.mod")

	test.DemandSuccess(t, p.Suspend.Set(true))
	test.ExpectSuccess(t, l.IsSuspended())

	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "elfmod.suspend"))

	l2 := elfmod.NewLoader()
	p2, err := elfmod.NewPreferences(l2, filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p2.Load())
	test.ExpectEquality(t, l2.PendingModfile(), "/tmp/test.mod")
	test.ExpectSuccess(t, l2.IsSuspended())
}
