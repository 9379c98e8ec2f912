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

// Package logger is the central log for PrimeHack. Entries are tagged with
// the name of the subsystem that made them and the log keeps only the most
// recent entries.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. This matters because most logging happens from
// per-frame code and the same warning would otherwise fill the log within a
// second of emulation.
//
// Every logging call must supply a Permission. The Allow value always
// permits logging. A mod passes itself as the permission so that a disabled
// mod does not log.
//
// The package level functions all operate on the central logger. Use
// NewLogger() for a logger that is independent of the central logger, which
// is normally only useful in tests.
package logger
