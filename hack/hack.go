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

package hack

import (
	"github.com/primehack/primehack/addressdb"
	"github.com/primehack/primehack/emulation"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/logger"
	"github.com/primehack/primehack/mod"
	"github.com/primehack/primehack/notifications"
	"github.com/primehack/primehack/variables"
)

// Manager determines the current running game and runs the mods that are
// enabled for that game.
type Manager struct {
	db       *addressdb.DB
	prefs    *Preferences
	detector game.Detector

	activeGame   game.Game
	activeRegion game.Region
	lastGame     game.Game
	lastRegion   game.Region

	mods  map[string]mod.Mod
	order []string

	vars variables.Manager

	// mod states at the time of the last Shutdown()
	stateBackup map[string]mod.State

	notify notifications.Notify
}

// NewManager is the preferred method of initialisation for the Manager type.
// The preferences argument can be nil.
func NewManager(db *addressdb.DB, prefs *Preferences) *Manager {
	return &Manager{
		db:           db,
		prefs:        prefs,
		activeGame:   game.InvalidGame,
		activeRegion: game.InvalidRegion,
		lastGame:     game.InvalidGame,
		lastRegion:   game.InvalidRegion,
		mods:         make(map[string]mod.Mod),
		stateBackup:  make(map[string]mod.State),
	}
}

// SetNotify sets the receiver of game change notifications. Can be nil.
func (mgr *Manager) SetNotify(notify notifications.Notify) {
	mgr.notify = notify
}

// Detector returns the game detector used at the start of every frame.
func (mgr *Manager) Detector() *game.Detector {
	return &mgr.detector
}

// AddressDB returns the address database the mods are plumbed into.
func (mgr *Manager) AddressDB() *addressdb.DB {
	return mgr.db
}

// AddMod registers a mod with the manager. Adding a mod with a name that is
// already registered replaces the existing mod but keeps its position in
// the run order.
func (mgr *Manager) AddMod(name string, m mod.Mod) {
	mod.Plumb(m, name, mgr, mgr.db)

	if _, ok := mgr.mods[name]; !ok {
		mgr.order = append(mgr.order, name)
	}
	mgr.mods[name] = m

	if mgr.prefs != nil {
		if err := mgr.prefs.add(name); err != nil {
			logger.Logf(logger.Allow, "hack", "%s: %v", name, err)
		}
	}
}

// Mods returns the names of all registered mods in run order.
func (mgr *Manager) Mods() []string {
	return append([]string{}, mgr.order...)
}

// GetMod returns the named mod or nil if it does not exist.
func (mgr *Manager) GetMod(name string) mod.Mod {
	return mgr.mods[name]
}

// Variables implements the mod.Context interface.
func (mgr *Manager) Variables() *variables.Manager {
	return &mgr.vars
}

// ActiveGame implements the mod.Context interface.
func (mgr *Manager) ActiveGame() game.Game {
	return mgr.activeGame
}

// ActiveRegion implements the mod.Context interface.
func (mgr *Manager) ActiveRegion() game.Region {
	return mgr.activeRegion
}

func (mgr *Manager) attach(g *emulation.Guard) {
	for _, name := range mgr.order {
		mgr.mods[name].ModBase().AttachGuard(g)
	}
}

// RunActiveMods should be called once per frame with the guard for that
// frame. The guard is attached to every mod for the duration of the call.
func (mgr *Manager) RunActiveMods(guard *emulation.Guard) {
	if !guard.Valid() {
		logger.Log(logger.Allow, "hack", "attempted to run mods outside of critical section")
		return
	}

	mgr.attach(guard)
	defer mgr.attach(nil)

	mgr.activeGame, mgr.activeRegion = mgr.detector.Detect(guard.Bus())

	if mgr.activeGame != mgr.lastGame || mgr.activeRegion != mgr.lastRegion {
		logger.Logf(logger.Allow, "hack", "game changed to %s (%s)", mgr.activeGame, mgr.activeRegion)
		for _, name := range mgr.order {
			mgr.mods[name].ModBase().ResetMod()
		}
		mgr.vars.Reset()
		mgr.lastGame = mgr.activeGame
		mgr.lastRegion = mgr.activeRegion

		if mgr.notify != nil {
			if err := mgr.notify.Notify(notifications.NotifyGameChanged); err != nil {
				logger.Logf(logger.Allow, "hack", "%v", err)
			}
		}
	}

	if !mgr.activeGame.Valid() || !mgr.activeRegion.Valid() {
		return
	}

	for _, name := range mgr.order {
		m := mgr.mods[name]
		b := m.ModBase()

		if !b.Initialized() {
			if !m.InitMod(mgr.activeGame, mgr.activeRegion) {
				logger.Logf(b, "hack", "%s: failed to initialise for %s", name, mgr.activeGame)
			}
			b.SetInitialized()
		}

		// patches added by RunMod() in the previous frame have their
		// original words captured here, before they are first applied
		b.UpdateOriginalInstructions()

		if b.ShouldApplyChanges() {
			b.ApplyInstructionChanges(true)
		}

		if b.State() != mod.Disabled {
			m.RunMod(mgr.activeGame, mgr.activeRegion)
		}
	}
}

// UpdateModStates reconciles the state of every mod with the preferences.
func (mgr *Manager) UpdateModStates() {
	if mgr.prefs == nil {
		return
	}
	for _, name := range mgr.order {
		p, ok := mgr.prefs.Enabled(name)
		if !ok {
			continue
		}
		mgr.SetModEnabled(name, p.Get().(bool))
	}
}

// SetModEnabled enables or disables the named mod. The state is only changed
// if it differs, so OnStateChange() is not called unnecessarily.
func (mgr *Manager) SetModEnabled(name string, enabled bool) {
	m, ok := mgr.mods[name]
	if !ok {
		return
	}
	active := m.ModBase().State() != mod.Disabled
	if enabled && !active {
		mgr.EnableMod(name)
	} else if !enabled && active {
		mgr.DisableMod(name)
	}
}

// EnableMod sets the named mod to the Enabled state.
func (mgr *Manager) EnableMod(name string) {
	if m, ok := mgr.mods[name]; ok {
		m.ModBase().SetState(mod.Enabled)
	}
}

// DisableMod sets the named mod to the Disabled state. The mod's patches are
// reverted on the next frame.
func (mgr *Manager) DisableMod(name string) {
	if m, ok := mgr.mods[name]; ok {
		m.ModBase().SetState(mod.Disabled)
	}
}

// EnableModWithoutNotify is the same as EnableMod() but the mod's
// OnStateChange() function is not called.
func (mgr *Manager) EnableModWithoutNotify(name string) {
	if m, ok := mgr.mods[name]; ok {
		m.ModBase().SetStateNoNotify(mod.Enabled)
	}
}

// DisableModWithoutNotify is the same as DisableMod() but the mod's
// OnStateChange() function is not called.
func (mgr *Manager) DisableModWithoutNotify(name string) {
	if m, ok := mgr.mods[name]; ok {
		m.ModBase().SetStateNoNotify(mod.Disabled)
	}
}

// IsModActive returns true if the named mod exists and is not disabled.
func (mgr *Manager) IsModActive(name string) bool {
	m, ok := mgr.mods[name]
	if !ok {
		return false
	}
	return m.ModBase().State() != mod.Disabled
}

// ResetMod resets the named mod.
func (mgr *Manager) ResetMod(name string) {
	if m, ok := mgr.mods[name]; ok {
		m.ModBase().ResetMod()
	}
}

// SetCodeGroupState changes the state of a code group in the named mod.
func (mgr *Manager) SetCodeGroupState(name string, group string, state mod.State) {
	if m, ok := mgr.mods[name]; ok {
		m.ModBase().SetCodeGroupState(group, state)
	}
}

// Shutdown disables every mod and reverts its patches. Mods are then reset.
// The state of each mod before the shutdown is remembered and can be
// reinstated with RestoreModStates().
func (mgr *Manager) Shutdown(guard *emulation.Guard) {
	if !guard.Valid() {
		logger.Log(logger.Allow, "hack", "attempted shutdown outside of critical section")
		return
	}

	mgr.attach(guard)
	defer mgr.attach(nil)

	for _, name := range mgr.order {
		b := mgr.mods[name].ModBase()
		mgr.stateBackup[name] = b.State()
		b.SetState(mod.Disabled)
		if b.Initialized() {
			b.ApplyInstructionChanges(true)
		}
		b.ResetMod()
	}

	mgr.lastGame = game.InvalidGame
	mgr.lastRegion = game.InvalidRegion
}

// RestoreModStates reinstates the mod states saved by Shutdown().
func (mgr *Manager) RestoreModStates() {
	for name, state := range mgr.stateBackup {
		if m, ok := mgr.mods[name]; ok {
			m.ModBase().SetState(state)
		}
	}
	clear(mgr.stateBackup)
}
