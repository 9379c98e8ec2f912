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

// Package modalflag handles command lines made up of a series of modes, each
// mode with its own flags. It wraps the flag package of the standard library.
//
// Arguments are given once with NewArgs(). Flags and sub-modes for the
// current mode are then added and Parse() is called. If sub-modes were added
// then the first argument after the flags selects the sub-mode, or the first
// sub-mode is selected if the argument is not a sub-mode. The mode is
// returned by Mode() and the remaining arguments by RemainingArgs().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		addr := md.AddHex32("addr", 0x80003000, "start address")
//		...
//	}
//
// Sub-mode comparisons are case insensitive. A help flag at any level prints
// the flags and the sub-modes of that level.
package modalflag
