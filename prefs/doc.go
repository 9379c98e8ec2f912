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

// Package prefs facilitates the storing and retrieval of preference values.
// Preferences are the configuration layer of PrimeHack: which mods are
// enabled, which modfile is pending for the ELF mod loader, whether the
// loaded mod is suspended, and so on.
//
// Values are stored in one of the prefs types (Bool, String, Int, Float).
// Each type can be given a pre and post hook, called when the value is set,
// which is how a change of preference is turned into an action. For example,
// the ELF mod loader's pending modfile is a String with a post hook.
//
// A Disk instance associates preference values with a key and a file:
//
//	var enabled prefs.Bool
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("mods.strgpatch.enabled", &enabled)
//	err = dsk.Load()
//
// The file is plain text with one "key :: value" entry per line. Entries in
// the file that are not known to the Disk instance are preserved when the
// file is saved, so several Disk instances can share the same file.
//
// Command line preferences are a stack of "key::value; key::value" groups,
// pushed with PushCommandLineStack(). A value on the stack overrides the
// value loaded from disk and is consumed when it is applied.
package prefs
