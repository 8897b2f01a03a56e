// This file is part of glfbo.
//
// glfbo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glfbo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glfbo.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Launch the statistics server on a new goroutine. The address is resolved
// with Address() and the URLs being served are written to output.
func Launch(output io.Writer, addr string) error {
	addr, err := Address(addr)
	if err != nil {
		return err
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "statsview: charts at http://%s%s\n", addr, viewPath)
	fmt.Fprintf(output, "statsview: profiles at http://%s%s\n", addr, pprofPath)

	return nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
