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
	"fmt"
	"sort"

	"github.com/primehack/primehack/paths"
	"github.com/primehack/primehack/prefs"
)

// Preferences for the mod manager.
type Preferences struct {
	dsk *prefs.Disk

	// keyed by mod name
	enabled map[string]*prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default preferences file.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{
		enabled: make(map[string]*prefs.Bool),
	}

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

	return p, nil
}

func enabledKey(name string) string {
	return fmt.Sprintf("mods.%s.enabled", name)
}

// add a mod to the preferences. mods are enabled by default.
func (p *Preferences) add(name string) error {
	if _, ok := p.enabled[name]; ok {
		return nil
	}

	b := &prefs.Bool{}
	_ = b.Set(true)
	if err := p.dsk.Add(enabledKey(name), b); err != nil {
		return err
	}
	p.enabled[name] = b

	return nil
}

// Enabled returns the preference value for the mod. The boolean is false if
// the mod has no preference.
func (p *Preferences) Enabled(name string) (*prefs.Bool, bool) {
	b, ok := p.enabled[name]
	return b, ok
}

// Names returns the sorted list of mods that have preferences.
func (p *Preferences) Names() []string {
	n := make([]string, 0, len(p.enabled))
	for k := range p.enabled {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	if err := p.dsk.Reset(); err != nil {
		return err
	}
	for _, b := range p.enabled {
		if err := b.Set(true); err != nil {
			return err
		}
	}
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
