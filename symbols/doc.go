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

// Package symbols keeps a table of symbol names and their addresses in guest
// memory. The ELF mod loader fills a table with the symbols of a loaded ELF
// file and resolves the names used by a modfile against it.
//
// Names are case-sensitive. Where more than one name is given for an address
// the first name is kept unless the later name is preferred.
package symbols
