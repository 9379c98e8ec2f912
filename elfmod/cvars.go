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

package elfmod

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/primehack/primehack/curated"
)

// CVarType is the declared type of a CVar.
type CVarType int

// List of valid CVarType values. The order matches the order of the Go
// types returned by CVarType.Zero().
const (
	Int8 CVarType = iota
	Int16
	Int32
	Int64
	Float32
	Float64
	Boolean
)

func (t CVarType) String() string {
	switch t {
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Boolean:
		return "bool"
	}
	return "unknown"
}

// ParseCVarType converts the type names used in modfiles.
func ParseCVarType(s string) (CVarType, error) {
	for t := Int8; t <= Boolean; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return Int8, curated.Errorf("cvar: unknown type (%s)", s)
}

// Size returns the number of bytes the type occupies in guest memory.
func (t CVarType) Size() int {
	switch t {
	case Boolean, Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	}
	return 0
}

// Zero returns the zero value of the Go type used to hold values of the
// CVar type.
func (t CVarType) Zero() any {
	switch t {
	case Int8:
		return uint8(0)
	case Int16:
		return uint16(0)
	case Int32:
		return uint32(0)
	case Int64:
		return uint64(0)
	case Float32:
		return float32(0)
	case Float64:
		return float64(0)
	case Boolean:
		return false
	}
	return nil
}

// TypeOf returns the CVarType for the Go type of the value. The integer
// types are unsigned and the value is stored in guest memory as is.
func TypeOf(v any) (CVarType, bool) {
	switch v.(type) {
	case uint8:
		return Int8, true
	case uint16:
		return Int16, true
	case uint32:
		return Int32, true
	case uint64:
		return Int64, true
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case bool:
		return Boolean, true
	}
	return Int8, false
}

// CVar is a variable in the loaded ELF file. Value always has the Go type
// that corresponds to Type.
type CVar struct {
	Name  string
	Addr  uint32
	Type  CVarType
	Value any

	// value has been set by the host and is waiting to be written to guest
	// memory
	staged bool
}

func (cv CVar) String() string {
	return fmt.Sprintf("%s %s @ %08x = %v", cv.Name, cv.Type, cv.Addr, cv.Value)
}

// readCVar updates the value of the CVar from guest memory.
func (l *Loader) readCVar(cv *CVar) {
	switch cv.Type {
	case Boolean:
		cv.Value = l.Read8(cv.Addr) != 0
	case Int8:
		cv.Value = l.Read8(cv.Addr)
	case Int16:
		cv.Value = l.Read16(cv.Addr)
	case Int32:
		cv.Value = l.Read32(cv.Addr)
	case Int64:
		cv.Value = l.Read64(cv.Addr)
	case Float32:
		cv.Value = l.ReadF32(cv.Addr)
	case Float64:
		cv.Value = l.ReadF64(cv.Addr)
	}
}

// syncCVars writes staged CVar values to guest memory. CVars without a
// staged value are refreshed from guest memory.
func (l *Loader) syncCVars() {
	l.crit.Lock()
	defer l.crit.Unlock()

	for _, cv := range l.cvars {
		if cv.staged {
			l.writeCVar(cv)
			cv.staged = false
		} else {
			l.readCVar(cv)
		}
	}
}

// writeCVar writes the value of the CVar to guest memory.
func (l *Loader) writeCVar(cv *CVar) {
	switch v := cv.Value.(type) {
	case bool:
		if v {
			l.Write8(1, cv.Addr)
		} else {
			l.Write8(0, cv.Addr)
		}
	case uint8:
		l.Write8(v, cv.Addr)
	case uint16:
		l.Write16(v, cv.Addr)
	case uint32:
		l.Write32(v, cv.Addr)
	case uint64:
		l.Write64(v, cv.Addr)
	case float32:
		l.WriteF32(v, cv.Addr)
	case float64:
		l.WriteF64(v, cv.Addr)
	}
}

// WriteCVarRequest changes the value of the named CVar. The value is written
// to guest memory on the next frame. Returns false if there is no such CVar
// or if the Go type of the value does not match the type of the CVar.
func (l *Loader) WriteCVarRequest(name string, v any) bool {
	l.crit.Lock()
	defer l.crit.Unlock()

	cv, ok := l.cvars[name]
	if !ok {
		return false
	}

	t, ok := TypeOf(v)
	if !ok || t != cv.Type {
		return false
	}

	cv.Value = v
	cv.staged = true
	return true
}

// GetCVarVal returns the current value of the named CVar.
func (l *Loader) GetCVarVal(name string) (any, bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	cv, ok := l.cvars[name]
	if !ok {
		return nil, false
	}
	return cv.Value, true
}

// CVarList returns a copy of every CVar, sorted by name.
func (l *Loader) CVarList() []CVar {
	l.crit.Lock()
	defer l.crit.Unlock()

	lst := make([]CVar, 0, len(l.cvars))
	for _, cv := range l.cvars {
		lst = append(lst, *cv)
	}
	sort.Slice(lst, func(i, j int) bool {
		return lst[i].Name < lst[j].Name
	})
	return lst
}

var presetRx = regexp.MustCompile(`^\s*(\w+)\s*=\s*(.*)$`)

// leadingUint parses the run of decimal digits at the start of the string.
// Zero is returned if there are no digits. Values too large for 64 bits
// saturate. A leading minus sign negates the value modulo 2^64.
func leadingUint(s string) uint64 {
	s = strings.TrimLeft(s, " \t")
	var neg bool
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0
	}
	v, err := strconv.ParseUint(s[:n], 10, 64)
	if err != nil {
		return ^uint64(0)
	}
	if neg {
		return -v
	}
	return v
}

func leadingFloat(s string, bits int) float64 {
	s = strings.TrimSpace(s)
	for n := len(s); n > 0; n-- {
		if v, err := strconv.ParseFloat(s[:n], bits); err == nil {
			return v
		}
	}
	return 0
}

// presetValue converts the preset string to the Go type of the CVar type.
func presetValue(t CVarType, s string) (any, bool) {
	switch t {
	case Int8:
		return uint8(leadingUint(s)), true
	case Int16:
		return uint16(leadingUint(s)), true
	case Int32:
		return uint32(leadingUint(s)), true
	case Int64:
		return leadingUint(s), true
	case Float32:
		return float32(leadingFloat(s, 32)), true
	case Float64:
		return leadingFloat(s, 64), true
	case Boolean:
		switch strings.TrimSpace(s) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return nil, false
}

// LoadPresets reads a file of "name = value" lines and sets the value of
// each named CVar. Lines naming an unknown CVar are skipped, as are boolean
// values other than true and false.
func (l *Loader) LoadPresets(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf("presets: %v", err)
	}
	defer f.Close()

	l.crit.Lock()
	defer l.crit.Unlock()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := presetRx.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		cv, ok := l.cvars[m[1]]
		if !ok {
			continue
		}

		if v, ok := presetValue(cv.Type, m[2]); ok {
			cv.Value = v
			cv.staged = true
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("presets: %v", err)
	}

	return nil
}
