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
	"github.com/primehack/primehack/paths"
	"github.com/primehack/primehack/prefs"
)

// preferences that apply to the command line tool as a whole.
type preferences struct {
	dsk *prefs.Disk

	extendedMEM1 prefs.Bool
	echo         prefs.Bool
}

func newPreferences(pth string) (*preferences, error) {
	p := &preferences{}

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

	// the loaded ELF mods live in the upper part of MEM1
	_ = p.extendedMEM1.Set(true)

	err = p.dsk.Add("memory.extendedMEM1", &p.extendedMEM1)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("logging.echo", &p.echo)
	if err != nil {
		return nil, err
	}

	return p, p.dsk.Load()
}
