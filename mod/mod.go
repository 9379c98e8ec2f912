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
	"github.com/primehack/primehack/addressdb"
	"github.com/primehack/primehack/game"
	"github.com/primehack/primehack/variables"
)

// State of a mod or of a code group.
type State int

// List of valid states.
const (
	Enabled State = iota
	Disabled

	// the mod runs but its patches are reverted
	CodeDisabled
)

func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	case CodeDisabled:
		return "code disabled"
	}
	return "unknown"
}

// CodeChange is a single patched word.
type CodeChange struct {
	Address uint32
	Var     uint32
}

// Context is the information a mod needs from the mod manager.
type Context interface {
	ActiveGame() game.Game
	ActiveRegion() game.Region

	// guest variables are shared by all mods
	Variables() *variables.Manager
}

// Mod is implemented by every mod. The Base type implements ModBase() and
// default implementations of OnStateChange() and OnReset().
type Mod interface {
	// RunMod is called once per frame for every mod that is not disabled
	RunMod(g game.Game, r game.Region)

	// InitMod is called the first time a mod runs for a game and region. The
	// mod should add its code changes. Failure to initialise is not fatal,
	// it is the mod's responsibility to disable itself if necessary
	InitMod(g game.Game, r game.Region) bool

	// OnStateChange is called by Base.SetState() after the state has changed
	OnStateChange(old State)

	// OnReset is called by Base.ResetMod() after the patches have been
	// cleared
	OnReset()

	ModBase() *Base
}

// Plumb a mod into the mod manager. The address database may be nil.
func Plumb(m Mod, name string, ctx Context, db *addressdb.DB) {
	b := m.ModBase()
	b.self = m
	b.name = name
	b.ctx = ctx
	b.db = db
}
