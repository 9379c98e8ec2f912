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
	"github.com/primehack/primehack/ppc"
)

// callgate records the resolved callgate symbols and the number of entries
// allocated so far. Entries are never freed while the mod is loaded.
type callgate struct {
	fnTable       uint32
	dispatchTable uint32
	dispatchFn    uint32
	restoreTable  uint32

	entries     uint32
	trampolines uint32
}

type cleanup struct {
	releaseFn      uint32
	shutdownSignal uint32
	shuttingDown   bool
}

// addCallgateEntry allocates a dispatch slot holding the original target
// and the hook, and a callgate function that loads the slot address into
// r11 before branching to the dispatch function. Returns the address of
// the callgate function.
func (l *Loader) addCallgateEntry(hook uint32, orig uint32) uint32 {
	dispatch := 8*l.callgate.entries + l.callgate.dispatchTable
	cg := 12*l.callgate.entries + l.callgate.fnTable

	l.AddCodeChange(dispatch, orig)
	l.AddCodeChange(dispatch+4, hook)

	l.AddCodeChange(cg, ppc.GenLis(11, dispatch>>16))
	l.AddCodeChange(cg+4, ppc.GenOri(11, 11, dispatch&0xffff))
	l.AddCodeChange(cg+8, ppc.GenBranch(cg+8, l.callgate.dispatchFn))

	l.callgate.entries++

	return cg
}

// addTrampolineRestoreEntry copies the first instruction of the function
// into the restore table, followed by a branch to the second instruction.
// Returns the address of the restore entry.
func (l *Loader) addTrampolineRestoreEntry(fs uint32) uint32 {
	loc := 8*l.callgate.trampolines + l.callgate.restoreTable

	l.AddCodeChange(loc, l.ReadInstruction(fs))
	l.AddCodeChange(loc+4, ppc.GenBranch(loc+4, fs+4))

	l.callgate.trampolines++

	return loc
}

// createVTHook replaces the virtual function table entry with a callgate
// to the hook.
func (l *Loader) createVTHook(hook uint32, vfte uint32) {
	cg := l.addCallgateEntry(hook, l.Read32(vfte))
	l.AddCodeChange(vfte, cg)
}

// createBLHook replaces the target of the branch-and-link instruction with
// a callgate to the hook.
func (l *Loader) createBLHook(hook uint32, bl uint32) {
	target := bl + ppc.BranchOffset(l.ReadInstruction(bl))
	cg := l.addCallgateEntry(hook, target)
	l.AddCodeChange(bl, ppc.GenBranchLink(bl, cg))
}

// createTrampoline replaces the first instruction of the function with a
// branch to a callgate to the hook. The hook can call the original function
// through the restore entry.
func (l *Loader) createTrampoline(hook uint32, fs uint32) {
	restore := l.addTrampolineRestoreEntry(fs)
	cg := l.addCallgateEntry(hook, restore)
	l.AddCodeChange(fs, ppc.GenBranch(fs, cg))
}
