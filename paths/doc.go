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

// Package paths contains functions to prepare paths to PrimeHack resources:
// the preferences file, modfile presets and saved snapshots.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the path to the preferences
// file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is the ".primehack" directory in the
// current working directory. For release builds (build tag "release") the
// base path is the user's configuration folder as reported by the configdir
// package. On a modern Linux system that will be:
//
//	/home/user/.config/primehack/preferences
//
// The base directory is created if it does not already exist.
package paths
