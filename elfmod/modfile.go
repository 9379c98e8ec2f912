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
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/primehack/primehack/curated"
	"github.com/primehack/primehack/mod"
)

var (
	lineRx     = regexp.MustCompile(`^\s*<(\w+)>\s*(.*)$`)
	changeRx   = regexp.MustCompile(`^([0-9A-Fa-f]{8})\s+([0-9A-Fa-f]{8})\s*(#.*)?$`)
	cvarRx     = regexp.MustCompile(`^([a-zA-Z_]\w*)\s+(i8|i16|i32|i64|f32|f64|bool)\s*(#.*)?$`)
	hookRx     = regexp.MustCompile(`^([a-zA-Z_]\w*)\s+([0-9A-Fa-f]{8})\s*(#.*)?$`)
	callgateRx = regexp.MustCompile(`^([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)\s*(#.*)?$`)
	cleanupRx  = regexp.MustCompile(`^([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)\s+([0-9A-Fa-f]{8})\s*(#.*)?$`)
)

// Hook is an unresolved hook directive.
type Hook struct {
	Symbol  string
	Address uint32
}

// CallgateSymbols names the four symbols that make up the callgate.
type CallgateSymbols struct {
	FnTable       string
	DispatchTable string
	DispatchFn    string
	RestoreTable  string
}

// CleanupSymbols names the symbols used to release the loaded mod and the
// address at which the release function is called.
type CleanupSymbols struct {
	ReleaseFn      string
	ShutdownSignal string
	Point          uint32
}

// Modfile is the parsed content of a modfile.
type Modfile struct {
	Path string

	// path to the ELF file. empty if the elf directive is missing or if the
	// file could not be found
	ELF string

	Callgate *CallgateSymbols
	Cleanup  *CleanupSymbols

	CVars       []CVar
	Changes     []mod.CodeChange
	VTHooks     []Hook
	BLHooks     []Hook
	Trampolines []Hook
}

// ParseModfile reads and parses the modfile at the path.
func ParseModfile(path string) (*Modfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("modfile: %v", err)
	}
	defer f.Close()

	return parseModfile(f, path)
}

func parseModfile(r io.Reader, path string) (*Modfile, error) {
	mf := &Modfile{Path: path}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := lineRx.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		// the last callgate, cleanup and elf directive replaces any earlier
		// directive even if it fails to parse
		switch m[1] {
		case "cvar":
			if cv, ok := parseCVar(m[2]); ok {
				mf.CVars = append(mf.CVars, cv)
			}
		case "change":
			if cc, ok := parseChange(m[2]); ok {
				mf.Changes = append(mf.Changes, cc)
			}
		case "vthook":
			if h, ok := parseHook(m[2]); ok {
				mf.VTHooks = append(mf.VTHooks, h)
			}
		case "blhook":
			if h, ok := parseHook(m[2]); ok {
				mf.BLHooks = append(mf.BLHooks, h)
			}
		case "trampoline":
			if h, ok := parseHook(m[2]); ok {
				mf.Trampolines = append(mf.Trampolines, h)
			}
		case "callgate":
			mf.Callgate = parseCallgate(m[2])
		case "cleanup":
			mf.Cleanup = parseCleanup(m[2])
		case "elf":
			mf.ELF = parseELFPath(path, m[2])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("modfile: %v", err)
	}

	return mf, nil
}

// Validate returns an error if any of the mandatory directives are missing.
func (mf *Modfile) Validate() error {
	if mf.ELF == "" {
		return curated.Errorf("modfile: %s: missing or unresolvable elf", mf.Path)
	}
	if mf.Callgate == nil {
		return curated.Errorf("modfile: %s: missing callgate", mf.Path)
	}
	if mf.Cleanup == nil {
		return curated.Errorf("modfile: %s: missing cleanup", mf.Path)
	}
	return nil
}

func hex32(s string) uint32 {
	// the regular expressions guarantee eight hex digits
	v, _ := strconv.ParseUint(s, 16, 32)
	return uint32(v)
}

func parseChange(s string) (mod.CodeChange, bool) {
	m := changeRx.FindStringSubmatch(s)
	if m == nil {
		return mod.CodeChange{}, false
	}
	return mod.CodeChange{Address: hex32(m[1]), Var: hex32(m[2])}, true
}

func parseCVar(s string) (CVar, bool) {
	m := cvarRx.FindStringSubmatch(s)
	if m == nil {
		return CVar{}, false
	}
	t, err := ParseCVarType(m[2])
	if err != nil {
		return CVar{}, false
	}
	return CVar{Name: m[1], Type: t}, true
}

func parseHook(s string) (Hook, bool) {
	m := hookRx.FindStringSubmatch(s)
	if m == nil {
		return Hook{}, false
	}
	return Hook{Symbol: m[1], Address: hex32(m[2])}, true
}

func parseCallgate(s string) *CallgateSymbols {
	m := callgateRx.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return &CallgateSymbols{
		FnTable:       m[1],
		DispatchTable: m[2],
		DispatchFn:    m[3],
		RestoreTable:  m[4],
	}
}

func parseCleanup(s string) *CleanupSymbols {
	m := cleanupRx.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return &CleanupSymbols{
		ReleaseFn:      m[1],
		ShutdownSignal: m[2],
		Point:          hex32(m[3]),
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// parseELFPath returns the path to the ELF file or the empty string if it
// can't be found.
func parseELFPath(modfile string, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if filepath.IsAbs(s) && exists(s) {
		return s
	}

	abs, err := filepath.Abs(modfile)
	if err != nil {
		return ""
	}

	p := filepath.Join(filepath.Dir(abs), s)
	if exists(p) {
		return p
	}

	return ""
}
