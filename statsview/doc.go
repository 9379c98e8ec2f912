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

// Package statsview offers runtime statistics of the mod engine through a
// local HTTP server. The server is only built when the statsview build tag is
// present. Without the tag Launch() does nothing and Available() returns
// false.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, the graphical statistics are viewable at:
//
//	localhost:12660/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12660/debug/pprof/
package statsview
