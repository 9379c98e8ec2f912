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
	"sync"

	"github.com/primehack/primehack/curated"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/mod"
	"github.com/primehack/primehack/notifications"
	"github.com/primehack/primehack/ppc"
	"github.com/primehack/primehack/symbols"
)

// Name of the mod as registered with the mod manager.
const Name = "elf_mod_loader"

// LoadState describes the lifecycle of the mod loaded from the ELF file.
type LoadState int

// List of valid LoadState values.
const (
	NotLoaded LoadState = iota
	Active
	Suspended
)

func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "not loaded"
	case Active:
		return "active"
	case Suspended:
		return "suspended"
	}
	return "unknown"
}

// values written to and read from the shutdown signal word.
const (
	signalResume   = 0
	signalShutdown = 1
	signalReleased = 2
	signalSuspend  = 3
)

// the symbol, if present in the ELF file, holding a string that is logged
// every frame.
const debugOutputSymbol = "debug_output"

// Loader is the mod that loads other mods from ELF files.
type Loader struct {
	mod.Base

	// crit protects the fields that are written to from outside of the
	// emulation: the pending modfile, the suspend request, the presets file
	// and the values of the CVars.
	crit           sync.Mutex
	pendingModfile string
	suspend        bool
	presets        string
	cvars          map[string]*CVar

	syms            *symbols.Table
	callgate        callgate
	cleanup         cleanup
	debugOutputAddr uint32
	loadState       LoadState

	notify notifications.Notify
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader() *Loader {
	return &Loader{
		cvars: make(map[string]*CVar),
		syms:  symbols.NewTable(),
	}
}

// SetNotify sets the receiver of load state notifications. Can be nil.
func (l *Loader) SetNotify(notify notifications.Notify) {
	l.notify = notify
}

func (l *Loader) notice(n notifications.Notice) {
	if l.notify == nil {
		return
	}
	if err := l.notify.Notify(n); err != nil {
		logger.Logf(l, l.Name(), "%s: %v", n, err)
	}
}

// SetPendingModfile requests that the modfile is loaded. If a mod is
// already loaded then it is shut down first.
func (l *Loader) SetPendingModfile(path string) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.pendingModfile = path
}

// ClearPendingModfile cancels a load request.
func (l *Loader) ClearPendingModfile() {
	l.SetPendingModfile("")
}

// PendingModfile returns the path of the modfile waiting to be loaded.
func (l *Loader) PendingModfile() string {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.pendingModfile
}

// ModPending returns true if there is a modfile waiting to be loaded.
func (l *Loader) ModPending() bool {
	return l.PendingModfile() != ""
}

// takePendingModfile returns and clears the pending modfile.
func (l *Loader) takePendingModfile() string {
	l.crit.Lock()
	defer l.crit.Unlock()
	p := l.pendingModfile
	l.pendingModfile = ""
	return p
}

// SetSuspended requests that the loaded mod is suspended or resumed.
func (l *Loader) SetSuspended(suspend bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.suspend = suspend
}

// IsSuspended returns true if suspension has been requested.
func (l *Loader) IsSuspended() bool {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.suspend
}

// SetPresetsFile sets the file of CVar presets that is applied whenever a
// mod is loaded. An empty path means no presets.
func (l *Loader) SetPresetsFile(path string) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.presets = path
}

func (l *Loader) presetsFile() string {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.presets
}

// LoadState returns the current load state.
func (l *Loader) LoadState() LoadState {
	return l.loadState
}

// ShuttingDown returns true if the loaded mod has been asked to shut down
// and has not yet released itself.
func (l *Loader) ShuttingDown() bool {
	return l.cleanup.shuttingDown
}

// Symbols returns the symbol table of the loaded ELF file.
func (l *Loader) Symbols() *symbols.Table {
	return l.syms
}

// CallgateEntries returns the number of callgate and trampoline restore
// entries allocated.
func (l *Loader) CallgateEntries() (int, int) {
	return int(l.callgate.entries), int(l.callgate.trampolines)
}

// InitMod implements the mod.Mod interface.
func (l *Loader) InitMod(g game.Game, r game.Region) bool {
	if (g == game.Prime1GCN || g == game.Prime2GCN) && r == game.NTSCU {
		l.updateBATRegs()
	}
	return true
}

// OnReset implements the mod.Mod interface.
func (l *Loader) OnReset() {
	l.ClearActiveMod()
}

// ClearActiveMod forgets everything about the loaded mod. Code changes are
// not reverted.
func (l *Loader) ClearActiveMod() {
	l.callgate = callgate{}
	l.cleanup = cleanup{}
	l.debugOutputAddr = 0
	l.loadState = NotLoaded
	l.syms.Clear()

	l.crit.Lock()
	l.cvars = make(map[string]*CVar)
	l.crit.Unlock()
}

// the loaded mod lives in the upper half of the extended MEM1 which must be
// mapped by the second BAT pair.
func (l *Loader) updateBATRegs() {
	regs := l.Registers()
	if regs == nil {
		return
	}

	if regs.SPR[ppc.DBAT2U]&ppc.BATValid == 0 && regs.SPR[ppc.IBAT2U]&ppc.BATValid == 0 {
		regs.SPR[ppc.DBAT2U] |= ppc.BATValid
		regs.SPR[ppc.IBAT2U] |= ppc.BATValid
		logger.Logf(l, l.Name(), "BAT2 enabled (%08x, %08x)", regs.SPR[ppc.DBAT2U], regs.SPR[ppc.IBAT2U])
	}
}

// RunMod implements the mod.Mod interface.
func (l *Loader) RunMod(g game.Game, r game.Region) {
	switch g {
	case game.Prime1GCN, game.Prime2GCN:
		l.updateBATRegs()
		if r != game.NTSCU {
			return
		}

		if l.cleanup.shuttingDown {
			if l.Read32(l.cleanup.shutdownSignal) == signalReleased {
				l.SetState(mod.Disabled)
				l.ApplyInstructionChanges(true)
				l.SetState(mod.Enabled)
				l.ResetMod()
				l.cleanup.shuttingDown = false
				logger.Log(l, l.Name(), "mod released")
				l.notice(notifications.NotifyModReleased)
			}
		} else {
			l.stepLoadState()
		}
	}

	if l.debugOutputAddr != 0 {
		logger.Log(l, "Mod Output", l.ReadString(l.debugOutputAddr))
	}

	if l.loadState == Active {
		l.syncCVars()
	}
}

func (l *Loader) stepLoadState() {
	switch l.loadState {
	case NotLoaded:
		if !l.ModPending() {
			return
		}
		path := l.takePendingModfile()
		if err := l.loadModfile(path); err != nil {
			logger.Logf(l, l.Name(), "%s: %v", path, err)
			l.notice(notifications.NotifyModLoadFailed)
			return
		}
		l.loadState = Active
		logger.Logf(l, l.Name(), "loaded %s", path)
		l.notice(notifications.NotifyModLoaded)

		if presets := l.presetsFile(); presets != "" {
			if err := l.LoadPresets(presets); err != nil {
				logger.Log(l, l.Name(), err)
			}
		}

	case Active:
		if l.ModPending() {
			l.shutdown()
		} else if l.IsSuspended() {
			l.Write32(signalSuspend, l.cleanup.shutdownSignal)
			l.loadState = Suspended
			l.notice(notifications.NotifyModSuspended)
		}

	case Suspended:
		if l.ModPending() {
			l.shutdown()
		} else if !l.IsSuspended() {
			l.Write32(signalResume, l.cleanup.shutdownSignal)
			l.loadState = Active
			l.notice(notifications.NotifyModResumed)
		}
	}
}

// shutdown asks the loaded mod to release itself. The patches are reverted
// once the mod has written the released value to the shutdown signal.
func (l *Loader) shutdown() {
	l.Write32(signalShutdown, l.cleanup.shutdownSignal)
	l.cleanup.shuttingDown = true
	l.notice(notifications.NotifyModShutdown)
}

// loadModfile parses the modfile, loads the ELF file into guest memory and
// adds the code changes. No code changes are added if an error is returned.
func (l *Loader) loadModfile(path string) error {
	mf, err := ParseModfile(path)
	if err != nil {
		return err
	}
	if err := mf.Validate(); err != nil {
		return err
	}

	bus := l.Guard().Bus()
	if bus == nil {
		return curated.Errorf("elfmod: no active guard")
	}

	l.syms.Clear()
	if err := LoadELF(bus, mf.ELF, l.syms); err != nil {
		return err
	}

	var ok [4]bool
	l.callgate.fnTable, ok[0] = l.syms.Search(mf.Callgate.FnTable)
	l.callgate.dispatchTable, ok[1] = l.syms.Search(mf.Callgate.DispatchTable)
	l.callgate.dispatchFn, ok[2] = l.syms.Search(mf.Callgate.DispatchFn)
	l.callgate.restoreTable, ok[3] = l.syms.Search(mf.Callgate.RestoreTable)
	if !ok[0] || !ok[1] || !ok[2] || !ok[3] {
		l.callgate = callgate{}
		return curated.Errorf("elfmod: callgate symbols not found in %s", mf.ELF)
	}

	l.cleanup.releaseFn, ok[0] = l.syms.Search(mf.Cleanup.ReleaseFn)
	l.cleanup.shutdownSignal, ok[1] = l.syms.Search(mf.Cleanup.ShutdownSignal)
	if !ok[0] || !ok[1] {
		l.callgate = callgate{}
		l.cleanup = cleanup{}
		return curated.Errorf("elfmod: cleanup symbols not found in %s", mf.ELF)
	}

	l.AddCodeChange(mf.Cleanup.Point, ppc.GenBranchLink(mf.Cleanup.Point, l.cleanup.releaseFn))

	for _, c := range mf.Changes {
		l.AddCodeChange(c.Address, c.Var)
	}

	l.crit.Lock()
	for _, decl := range mf.CVars {
		addr, ok := l.syms.Search(decl.Name)
		if !ok {
			logger.Logf(l, l.Name(), "cvar %s not found", decl.Name)
			continue
		}
		cv := &CVar{Name: decl.Name, Addr: addr, Type: decl.Type}
		l.readCVar(cv)
		l.cvars[cv.Name] = cv
	}
	l.crit.Unlock()

	for _, h := range mf.VTHooks {
		if addr, ok := l.resolveHook(h); ok {
			l.createVTHook(addr, h.Address)
		}
	}
	for _, h := range mf.BLHooks {
		if addr, ok := l.resolveHook(h); ok {
			l.createBLHook(addr, h.Address)
		}
	}
	for _, h := range mf.Trampolines {
		if addr, ok := l.resolveHook(h); ok {
			l.createTrampoline(addr, h.Address)
		}
	}

	l.debugOutputAddr, _ = l.syms.Search(debugOutputSymbol)

	return nil
}

func (l *Loader) resolveHook(h Hook) (uint32, bool) {
	addr, ok := l.syms.Search(h.Symbol)
	if !ok {
		logger.Logf(l, l.Name(), "hook %s not found", h.Symbol)
	}
	return addr, ok
}
