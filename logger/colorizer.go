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

package logger

import (
	"bytes"
	"io"

	"github.com/mgutz/ansi"
)

var (
	tagPen    = ansi.ColorCode("cyan+b")
	warnPen   = ansi.ColorCode("yellow")
	detailPen = ansi.ColorCode("default")
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// line is highlighted and lines that look like warnings are given a
// different pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer

	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}

		tag, detail, found := bytes.Cut(l, []byte(": "))
		if !found {
			b.Write(l)
			continue
		}

		b.WriteString(tagPen)
		b.Write(tag)
		b.WriteString(ansi.Reset)
		b.WriteString(": ")

		if bytes.Contains(bytes.ToLower(detail), []byte("attempted")) ||
			bytes.Contains(bytes.ToLower(detail), []byte("failed")) {
			b.WriteString(warnPen)
		} else {
			b.WriteString(detailPen)
		}
		b.Write(bytes.TrimRight(detail, "\n"))
		b.WriteString(ansi.Reset)
		if bytes.HasSuffix(detail, []byte("\n")) {
			b.WriteString("\n")
		}
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}

	return len(p), nil
}
