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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/bradleyjkemp/memviz"

	"github.com/primehack/primehack/addressdb"
	"github.com/primehack/primehack/elfmod"
	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/hack"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/memory"
	"github.com/primehack/primehack/modalflag"
	"github.com/primehack/primehack/mods/hypermode"
	"github.com/primehack/primehack/mods/strgpatch"
	"github.com/primehack/primehack/notifications"
	"github.com/primehack/primehack/ppc"
	"github.com/primehack/primehack/prefs"
	"github.com/primehack/primehack/snapshot"
	"github.com/primehack/primehack/statsview"
	"github.com/primehack/primehack/symbols"
	"github.com/primehack/primehack/version"
	"github.com/primehack/primehack/vmcall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch returns the exit value of the program.
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "ADDRESSES", "DISASM", "MODFILE", "VERSION")

	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsFile := md.AddString("prefsfile", "", "preferences file to use")
	cmdlinePrefs := md.AddString("prefs", "", "preference overrides (key::value; key::value)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
		defer prefs.PopCommandLineStack()
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(ctx, output)
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output, *prefsFile)
	case "ADDRESSES":
		err = addresses(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "MODFILE":
		err = modfile(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

// engine is the mod manager with the standard set of mods.
type engine struct {
	mgr     *hack.Manager
	loader  *elfmod.Loader
	vmcalls *vmcall.Registry
}

func newEngine(prefsFile string) (*engine, error) {
	db := addressdb.NewDB()
	addressdb.Init(db)

	hprefs, err := hack.NewPreferences(prefsFile)
	if err != nil {
		return nil, err
	}

	eng := &engine{
		mgr:     hack.NewManager(db, hprefs),
		loader:  elfmod.NewLoader(),
		vmcalls: &vmcall.Registry{},
	}

	eng.mgr.AddMod(elfmod.Name, eng.loader)
	eng.mgr.AddMod(strgpatch.Name, strgpatch.NewPatch(eng.vmcalls))
	eng.mgr.AddMod(hypermode.Name, &hypermode.Unlock{})

	eprefs, err := elfmod.NewPreferences(eng.loader, prefsFile)
	if err != nil {
		return nil, err
	}

	if err := hprefs.Load(); err != nil {
		return nil, err
	}
	if err := eprefs.Load(); err != nil {
		return nil, err
	}
	eng.mgr.UpdateModStates()

	return eng, nil
}

// printNotices writes notifications to the output.
type printNotices struct {
	output io.Writer
}

func (p printNotices) Notify(notice notifications.Notice) error {
	_, err := fmt.Fprintf(p.output, "! %s\n", notice)
	return err
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer, prefsFile string) error {
	md.NewMode()
	md.AdditionalHelp("Runs the mods against a snapshot for a number of frames. Guest code\n" +
		"is not executed, a vmcall can be dispatched each frame with -vmcall.")

	frames := md.AddInt("frames", 1, "number of frames to run")
	modfile := md.AddString("modfile", "", "modfile to load")
	presets := md.AddString("presets", "", "cvar presets to apply after loading")
	suspend := md.AddBool("suspend", false, "suspend the loaded mod after loading")
	forceGame := md.AddString("game", "", "force detection of game (eg. PRIME_3)")
	vmcallAddr := md.AddHex32("vmcall", 0, "address of a vmcall to dispatch every frame")
	save := md.AddString("save", "", "save snapshot after running")
	viz := md.AddString("memviz", "", "write graph of the mod manager to file (dot format)")
	echo := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("snapshot file required for %s mode", md)
	}

	cprefs, err := newPreferences(prefsFile)
	if err != nil {
		return err
	}
	if *echo || cprefs.echo.Get().(bool) {
		logger.SetEcho(os.Stdout, false)
		defer logger.SetEcho(nil, false)
	}

	eng, err := newEngine(prefsFile)
	if err != nil {
		return err
	}

	if *forceGame != "" {
		g, err := game.ParseGame(*forceGame)
		if err != nil {
			return err
		}
		eng.mgr.Detector().Force(g)
	}

	eng.mgr.SetNotify(printNotices{output: output})
	eng.loader.SetNotify(printNotices{output: output})

	if *modfile != "" {
		eng.loader.SetPendingModfile(*modfile)
	}
	if *presets != "" {
		eng.loader.SetPresetsFile(*presets)
	}

	core := emulation.NewCore(cprefs.extendedMEM1.Get().(bool))
	if _, err := snapshot.Load(md.GetArg(0), core); err != nil {
		return err
	}

	var invalidated int
	for i := 0; i < *frames; i++ {
		if ctx.Err() != nil {
			fmt.Fprintln(output, "* interrupted")
			break
		}

		if i == 1 && *suspend {
			eng.loader.SetSuspended(true)
		}

		invalidated += core.Frame(func(g *emulation.Guard) {
			eng.mgr.RunActiveMods(g)
			if *vmcallAddr != 0 {
				eng.vmcalls.Execute(g, *vmcallAddr)
			}
		})
	}

	report(output, eng, core.FrameNum(), invalidated)

	if *save != "" {
		if err := snapshot.Save(*save, core); err != nil {
			return err
		}
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, eng.mgr)
	}

	return nil
}

func report(output io.Writer, eng *engine, frames int, invalidated int) {
	fmt.Fprintf(output, "game: %s (%s)\n", eng.mgr.ActiveGame(), eng.mgr.ActiveRegion())
	fmt.Fprintf(output, "frames: %d, icache invalidations: %d\n", frames, invalidated)

	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	for _, name := range eng.mgr.Mods() {
		b := eng.mgr.GetMod(name).ModBase()
		fmt.Fprintf(w, "%s\t%s\t%d changes\n", name, b.State(), len(b.CodeChanges()))
	}
	w.Flush()

	fmt.Fprintf(output, "elf mod: %s\n", eng.loader.LoadState())
	for _, cv := range eng.loader.CVarList() {
		fmt.Fprintf(output, "  %s\n", cv)
	}
}

func addresses(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	forceGame := md.AddString("game", "", "force detection of game (eg. PRIME_3)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("snapshot file required for %s mode", md)
	}

	db := addressdb.NewDB()
	addressdb.Init(db)

	var det game.Detector
	if *forceGame != "" {
		g, err := game.ParseGame(*forceGame)
		if err != nil {
			return err
		}
		det.Force(g)
	}

	core := emulation.NewCore(true)
	if _, err := snapshot.Load(md.GetArg(0), core); err != nil {
		return err
	}

	guard := core.Lock()
	defer guard.Release()

	g, r := det.Detect(guard.Bus())
	if !g.Valid() || !r.Valid() {
		return fmt.Errorf("game not recognised (%s)", game.ReadID(guard.Bus()))
	}

	fmt.Fprintf(output, "%s (%s)\n", g, r)

	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for _, name := range db.Names(g) {
		if db.IsDynamic(g, name) {
			fmt.Fprintf(w, "%s\t%08x\tdynamic\n", name, db.LookupDynamicAddress(guard.Bus(), g, r, name))
			continue
		}
		if addr, ok := db.LookupAddress(g, r, name); ok {
			fmt.Fprintf(w, "%s\t%08x\n", name, addr)
		} else {
			fmt.Fprintf(w, "%s\t-\n", name)
		}
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	addr := md.AddHex32("addr", 0x80003100, "start address")
	count := md.AddInt("count", 16, "number of instructions")
	elfFile := md.AddString("elf", "", "ELF file to load over the snapshot for symbols")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("snapshot file required for %s mode", md)
	}

	core := emulation.NewCore(true)
	if _, err := snapshot.Load(md.GetArg(0), core); err != nil {
		return err
	}

	guard := core.Lock()
	defer guard.Release()

	syms := symbols.NewTable()
	if *elfFile != "" {
		if err := elfmod.LoadELF(guard.Bus(), *elfFile, syms); err != nil {
			return err
		}
	}

	a := memory.Align(*addr, 4)
	for i := 0; i < *count; i++ {
		if s, ok := syms.ReverseSearch(a); ok {
			fmt.Fprintf(output, "%s:\n", s)
		}
		instr := guard.Bus().ReadInstruction(a)
		fmt.Fprintf(output, "%08x: %08x  %s\n", a, instr, ppc.Disassemble(a, instr))
		a += 4
	}

	return nil
}

func modfile(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	listSymbols := md.AddBool("symbols", false, "list the symbols in the ELF file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("modfile required for %s mode", md)
	}

	mf, err := elfmod.ParseModfile(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "elf: %s\n", mf.ELF)
	if mf.Callgate != nil {
		fmt.Fprintf(output, "callgate: %+v\n", *mf.Callgate)
	}
	if mf.Cleanup != nil {
		fmt.Fprintf(output, "cleanup: %s %s at %08x\n", mf.Cleanup.ReleaseFn, mf.Cleanup.ShutdownSignal, mf.Cleanup.Point)
	}
	for _, c := range mf.Changes {
		fmt.Fprintf(output, "change: %08x = %08x  %s\n", c.Address, c.Var, ppc.Disassemble(c.Address, c.Var))
	}
	for _, cv := range mf.CVars {
		fmt.Fprintf(output, "cvar: %s %s\n", cv.Name, cv.Type)
	}
	for _, h := range mf.VTHooks {
		fmt.Fprintf(output, "vthook: %s at %08x\n", h.Symbol, h.Address)
	}
	for _, h := range mf.BLHooks {
		fmt.Fprintf(output, "blhook: %s at %08x\n", h.Symbol, h.Address)
	}
	for _, h := range mf.Trampolines {
		fmt.Fprintf(output, "trampoline: %s at %08x\n", h.Symbol, h.Address)
	}

	if err := mf.Validate(); err != nil {
		return err
	}

	if *listSymbols {
		syms := symbols.NewTable()
		if err := elfmod.LoadELF(memory.NewRAM(true), mf.ELF, syms); err != nil {
			return err
		}
		syms.List(output)
	}

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
