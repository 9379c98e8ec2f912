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

package symbols

import (
	"fmt"
	"io"
)

// List outputs every symbol in the table in address order.
func (t *Table) List(output io.Writer) {
	t.crit.Lock()
	defer t.crit.Unlock()

	for _, a := range t.idx {
		fmt.Fprintf(output, "%08x %-*s\n", a, t.maxWidth, t.entries[a])
	}
}
