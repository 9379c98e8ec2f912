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

package mod

import (
	"slices"
	"sort"

	"github.com/primehack/primehack/addressdb"
	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/variables"
)

type codeGroup struct {
	members []int
	state   State
}

// Base should be embedded by every mod.
type Base struct {
	self Mod
	name string
	ctx  Context
	db   *addressdb.DB

	guard *emulation.Guard

	state       State
	initialized bool

	// the three slices are parallel. originalInstructions may be shorter
	// than the other two until UpdateOriginalInstructions() is called
	codeChanges          []CodeChange
	originalInstructions []CodeChange
	currentActiveChanges []CodeChange

	// addresses waiting for the original instruction to be captured
	pendingBackups []uint32

	codeGroups map[string]*codeGroup
}

// ModBase implements the Mod interface.
func (b *Base) ModBase() *Base {
	return b
}

// OnStateChange implements the Mod interface.
func (b *Base) OnStateChange(_ State) {
}

// OnReset implements the Mod interface.
func (b *Base) OnReset() {
}

// AllowLogging implements the logger.Permission interface. A disabled mod
// does not log.
func (b *Base) AllowLogging() bool {
	return b.state != Disabled
}

// Name returns the name the mod was registered with.
func (b *Base) Name() string {
	return b.name
}

// AddCodeChange adds a patch. If a group name is given then the patch is
// bound to that group and the group is enabled. The original word at the
// address is captured by the next call to UpdateOriginalInstructions().
func (b *Base) AddCodeChange(addr uint32, code uint32, group ...string) {
	if len(group) > 0 && group[0] != "" {
		if b.codeGroups == nil {
			b.codeGroups = make(map[string]*codeGroup)
		}
		cg, ok := b.codeGroups[group[0]]
		if !ok {
			cg = &codeGroup{}
			b.codeGroups[group[0]] = cg
		}
		cg.members = append(cg.members, len(b.codeChanges))
		cg.state = Enabled
	}

	b.pendingBackups = append(b.pendingBackups, addr)
	b.codeChanges = append(b.codeChanges, CodeChange{Address: addr, Var: code})
	b.currentActiveChanges = append(b.currentActiveChanges, CodeChange{Address: addr, Var: code})
}

// UpdateOriginalInstructions captures the original word for every patch
// added since the last call.
func (b *Base) UpdateOriginalInstructions() {
	if len(b.pendingBackups) == 0 {
		return
	}

	for _, addr := range b.pendingBackups {
		b.originalInstructions = append(b.originalInstructions, CodeChange{
			Address: addr,
			Var:     b.ReadInstruction(addr),
		})
	}
	b.pendingBackups = b.pendingBackups[:0]

	// groups disabled before their originals were captured
	for _, cg := range b.codeGroups {
		if cg.state == Enabled {
			continue
		}
		for _, i := range cg.members {
			if i < len(b.originalInstructions) {
				b.currentActiveChanges[i] = b.originalInstructions[i]
			}
		}
	}
}

func (b *Base) changesToApply() []CodeChange {
	if b.state == CodeDisabled || b.state == Disabled {
		return b.originalInstructions
	}
	return b.currentActiveChanges
}

// ShouldApplyChanges returns true if memory differs from the set of words
// that would be written by ApplyInstructionChanges().
func (b *Base) ShouldApplyChanges() bool {
	for _, c := range b.changesToApply() {
		if b.Read32(c.Address) != c.Var {
			return true
		}
	}
	return false
}

// ApplyInstructionChanges writes the active set of patches to memory. If
// the mod is disabled the original words are written instead. Instruction
// cache invalidation is scheduled for every address if invalidate is true.
func (b *Base) ApplyInstructionChanges(invalidate bool) {
	if !b.guard.Valid() {
		logger.Log(logger.Allow, b.tag(), "attempted active mod code outside of critical section")
		return
	}

	bus := b.guard.Bus()
	for _, c := range b.changesToApply() {
		bus.Write32(c.Address, c.Var)
		if invalidate {
			bus.InvalidateICache(c.Address)
		}
	}
}

// SetCodeGroupState changes the state of a group and updates the active set
// of patches for the group's members. Unknown groups are ignored.
func (b *Base) SetCodeGroupState(group string, state State) {
	cg, ok := b.codeGroups[group]
	if !ok {
		return
	}
	if cg.state == state {
		return
	}

	cg.state = state

	from := b.originalInstructions
	if state == Enabled {
		from = b.codeChanges
	}

	for _, i := range cg.members {
		// original may not have been captured yet
		if i < len(from) {
			b.currentActiveChanges[i] = from[i]
		}
	}
}

// CodeGroupState returns the state of the group.
func (b *Base) CodeGroupState(group string) (State, bool) {
	cg, ok := b.codeGroups[group]
	if !ok {
		return Disabled, false
	}
	return cg.state, true
}

// CodeGroups returns the sorted names of all code groups.
func (b *Base) CodeGroups() []string {
	g := make([]string, 0, len(b.codeGroups))
	for n := range b.codeGroups {
		g = append(g, n)
	}
	sort.Strings(g)
	return g
}

// SetCodeChange replaces the word of an existing patch. The index is the
// order in which the patch was added.
func (b *Base) SetCodeChange(index int, v uint32) {
	if index < 0 || index >= len(b.codeChanges) {
		logger.Logf(b, b.tag(), "code change %d out of range", index)
		return
	}
	b.codeChanges[index].Var = v
	b.currentActiveChanges[index].Var = v
}

// CodeChanges returns a copy of the patched words.
func (b *Base) CodeChanges() []CodeChange {
	return slices.Clone(b.codeChanges)
}

// ActiveChanges returns a copy of the active set of patches.
func (b *Base) ActiveChanges() []CodeChange {
	return slices.Clone(b.currentActiveChanges)
}

// OriginalInstructions returns a copy of the captured original words.
func (b *Base) OriginalInstructions() []CodeChange {
	return slices.Clone(b.originalInstructions)
}

// ResetMod removes all patches and groups and marks the mod as
// uninitialised. The mod's OnReset() function is called.
func (b *Base) ResetMod() {
	b.codeChanges = b.codeChanges[:0]
	b.originalInstructions = b.originalInstructions[:0]
	b.pendingBackups = b.pendingBackups[:0]
	b.currentActiveChanges = b.currentActiveChanges[:0]
	clear(b.codeGroups)
	b.initialized = false

	if b.self != nil {
		b.self.OnReset()
	}
}

// State returns the mod's state.
func (b *Base) State() State {
	return b.state
}

// SetState changes the state and calls the mod's OnStateChange() function.
func (b *Base) SetState(state State) {
	old := b.state
	b.state = state
	if b.self != nil {
		b.self.OnStateChange(old)
	}
}

// SetStateNoNotify changes the state without calling OnStateChange().
func (b *Base) SetStateNoNotify(state State) {
	b.state = state
}

// Initialized returns true if InitMod() has been called since the last reset.
func (b *Base) Initialized() bool {
	return b.initialized
}

// SetInitialized is called by the mod manager after InitMod().
func (b *Base) SetInitialized() {
	b.initialized = true
}

// AttachGuard is called by the mod manager at the start of a frame. A nil
// guard detaches the current guard.
func (b *Base) AttachGuard(g *emulation.Guard) {
	b.guard = g
}

// Guard returns the attached guard, which may be nil or invalid.
func (b *Base) Guard() *emulation.Guard {
	return b.guard
}

// Game returns the active game. InvalidGame if the mod is not plumbed in.
func (b *Base) Game() game.Game {
	if b.ctx == nil {
		return game.InvalidGame
	}
	return b.ctx.ActiveGame()
}

// Region returns the active region. InvalidRegion if the mod is not plumbed
// in.
func (b *Base) Region() game.Region {
	if b.ctx == nil {
		return game.InvalidRegion
	}
	return b.ctx.ActiveRegion()
}

// Variables returns the guest variables shared by all mods. Returns nil if
// the mod is not plumbed in.
func (b *Base) Variables() *variables.Manager {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Variables()
}

// LookupAddress returns the static address for the active game and region.
// Returns zero if the address is not found.
func (b *Base) LookupAddress(name string) uint32 {
	if b.db == nil {
		return 0
	}
	return b.db.Address(b.Game(), b.Region(), name)
}

// LookupDynamicAddress resolves a pointer chain for the active game and
// region. Returns zero if the chain can't be followed this frame.
func (b *Base) LookupDynamicAddress(name string) uint32 {
	if b.db == nil {
		return 0
	}
	if !b.guard.Valid() {
		logger.Log(logger.Allow, b.tag(), "attempted active mod code outside of critical section")
		return 0
	}
	return b.db.LookupDynamicAddress(b.guard.Bus(), b.Game(), b.Region(), name)
}

func (b *Base) tag() string {
	if b.name == "" {
		return "mod"
	}
	return b.name
}
