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

// Package variables allocates named variables in an unused area of low
// guest memory. Mods use the variables to communicate with the code they
// patch into the game. A pair of instructions that loads the address of a
// variable into a register is created with MakeLisOri().
//
// Variables are four bytes wide. The first variable is at BaseAddress and
// there is room for MaxVariables variables.
package variables
