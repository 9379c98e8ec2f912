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

// Package elfmod implements a mod that loads another mod from an ELF file
// at runtime. The ELF file is described by a modfile, a small text file of
// directives:
//
//	<elf> path
//	<callgate> fn_table dispatch_table dispatch_fn restore_table
//	<cleanup> release_fn shutdown_signal XXXXXXXX
//	<cvar> name i8|i16|i32|i64|f32|f64|bool
//	<change> XXXXXXXX XXXXXXXX
//	<vthook> symbol XXXXXXXX
//	<blhook> symbol XXXXXXXX
//	<trampoline> symbol XXXXXXXX
//
// The elf, callgate and cleanup directives are mandatory. A line that can't
// be parsed is ignored. The ELF path is relative to the modfile unless it is
// an absolute path to a file that exists.
//
// Hooks redirect game code to functions in the ELF file through a callgate.
// Each callgate entry is three instructions in the callgate function table
// that load the address of a pair of words in the dispatch table into r11
// and branch to the dispatch function. The pair of words is the original
// target and the hook. A trampoline hook additionally copies the first
// instruction of the hooked function into the trampoline restore table,
// followed by a branch back into the hooked function.
//
// The loaded mod signals its state through the shutdown signal word: the
// loader writes 1 to request a shutdown, 3 to suspend and 0 to resume. The
// mod writes 2 when it has released itself, after which the loader reverts
// all patches and is ready to load another modfile.
//
// CVars are variables in the ELF file that can be changed from outside the
// emulation. The value of every CVar is written to guest memory every frame
// while the mod is active.
package elfmod
