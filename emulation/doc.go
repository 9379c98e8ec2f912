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

// Package emulation models the emulator capability consumed by the mod
// engine. The Core type owns guest memory and the guest register file. Access
// to either is only possible through a Guard, which is obtained by locking the
// Core for the duration of an emulated frame.
//
// A released Guard remains a valid value but all access through it is
// refused. Code that receives a Guard should check Valid() before use.
package emulation
