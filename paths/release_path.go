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

//go:build release

package paths

import (
	"os"
	"path/filepath"

	"github.com/shibukawa/configdir"
)

const (
	vendorName = "primehack"
	appName    = ""
)

// getBasePath returns the user's global config folder for primehack. the
// directory is created if it doesn't exist.
func getBasePath(subPath string) (string, error) {
	dirs := configdir.New(vendorName, appName)
	folders := dirs.QueryFolders(configdir.Global)
	if len(folders) == 0 {
		return "", os.ErrNotExist
	}

	pth := filepath.Join(folders[0].Path, subPath)

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
