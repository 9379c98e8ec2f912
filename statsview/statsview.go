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

//go:build statsview

package statsview

import (
	"context"
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/primehack/primehack/logger"
)

// Address of the statsview server.
const Address = "localhost:12660"

// Launch runs the statsview server in its own goroutine until the context is
// cancelled. The charts show the memory and goroutine use of the mod engine
// while frames are being run.
func Launch(ctx context.Context, output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go mgr.Start()
	go func() {
		<-ctx.Done()
		mgr.Stop()
		logger.Log(logger.Allow, "statsview", "server stopped")
	}()

	logger.Logf(logger.Allow, "statsview", "server running at %s", Address)
	fmt.Fprintf(output, "stats at http://%s/debug/statsview\n", Address)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
