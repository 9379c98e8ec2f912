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

// Package mod is the foundation of every mod. A mod is a type that embeds
// the Base type and implements the remainder of the Mod interface.
//
// The Base type manages the mod's instruction patches. A patch (a
// CodeChange) is a single 32bit word written to a guest address. The
// original word at each address is captured the first time the mod runs
// after the patch was added. Patches can be bound into named groups and a
// group can be enabled or disabled independently of the mod itself.
//
// The active set of patches is the list of words that are pushed to memory
// by ApplyInstructionChanges(). Each entry in the active set is either the
// patched word or the original word, selected by the state of the group the
// patch belongs to. A patch that is not in a group is always patched unless
// the mod as a whole is disabled, in which case every entry is the original
// word.
//
// Guest memory is only available while a guard is attached to the mod. The
// mod manager attaches the guard at the start of a frame and detaches it
// when the frame ends. Memory access without a guard is logged and ignored.
package mod
