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

// Package test contains helper functions that remove common boilerplate from
// the tests in this module.
//
// The Expect functions report a test error and let the test continue. The
// Demand functions stop the test immediately. Both take an optional list of
// tags which are printed ahead of the failure message, useful when the same
// check is made inside a loop.
//
// Success and failure are judged by type. For a bool, true is success. For an
// error, nil is success. An untyped nil is also a success, because that is
// what a nil error looks like once it has been passed as an interface value.
//
// The CompareWriter type implements io.Writer and collects output so that it
// can be compared against an expected string. It is used to test log output.
package test
