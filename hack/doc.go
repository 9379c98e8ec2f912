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

// Package hack is the mod manager. Mods are registered with the manager and
// the manager runs them once per frame with the RunActiveMods() function.
//
// The manager detects the game and region at the start of every frame. When
// either changes every mod is reset, which removes their patches. A mod is
// then reinitialised the next time it runs, at which point it adds the
// patches appropriate for the new game.
//
// Mods are run in the order they were registered.
package hack
