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

// Package curated wraps the Go error type with a pattern that can be tested
// for later. Errors are created with Errorf(), which takes a formatting
// pattern and values in the same way as fmt.Errorf():
//
//	err := curated.Errorf("modfile: missing directive %s", "<elf>")
//
// The pattern, rather than the formatted message, identifies the error:
//
//	if curated.Is(err, "modfile: missing directive %s") {
//		...
//	}
//
// Has() searches the whole chain of wrapped errors for the pattern, so an
// error returned from deep within the ELF loader can still be recognised
// after it has been wrapped by the caller:
//
//	f := curated.Errorf("elfmod: %v", err)
//	curated.Has(f, "modfile: missing directive %s") // true
//	curated.Is(f, "modfile: missing directive %s")  // false
//
// IsAny() reports whether an error was created by this package at all. In
// the mod engine this is the difference between an expected failure (a
// malformed modfile, a missing symbol) and an unexpected one.
//
// The Error() implementation removes duplicate adjacent parts of the message
// chain. Wrapping an error with the same prefix at several levels of the call
// stack therefore produces "elfmod: no such symbol" and not
// "elfmod: elfmod: no such symbol".
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library see through them to wrapped errors such as
// os.ErrNotExist.
package curated
