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
	"github.com/primehack/primehack/paths"
	"github.com/primehack/primehack/prefs"
)

// Preferences for the ELF mod loader. Changing a value takes effect on the
// next frame.
type Preferences struct {
	dsk *prefs.Disk

	// setting the modfile requests that it is loaded
	Modfile prefs.String

	Suspend prefs.Bool

	// applied to the CVars of every mod that is loaded
	Presets prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preference values are forwarded to the Loader. An
// empty path means the default preferences file.
func NewPreferences(l *Loader, pth string) (*Preferences, error) {
	p := &Preferences{}

	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.Modfile.SetHookPost(func(v prefs.Value) error {
		l.SetPendingModfile(v.(string))
		return nil
	})
	p.Suspend.SetHookPost(func(v prefs.Value) error {
		l.SetSuspended(v.(bool))
		return nil
	})
	p.Presets.SetHookPost(func(v prefs.Value) error {
		l.SetPresetsFile(v.(string))
		return nil
	})

	err = p.dsk.Add("elfmod.modfile", &p.Modfile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("elfmod.suspend", &p.Suspend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("elfmod.presets", &p.Presets)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
