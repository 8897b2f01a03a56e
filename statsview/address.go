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

package statsview

import (
	"net"
	"strconv"

	"github.com/jetsetilly/glfbo/curated"
)

// DefaultAddress of the statistics server.
const DefaultAddress = "localhost:12600"

// paths served by the statistics server.
const (
	viewPath  = "/debug/statsview"
	pprofPath = "/debug/pprof/"
)

// Error patterns.
const (
	InvalidAddress = "statsview: invalid address (%s)"
	NotAvailable   = "statsview: not available in this build (build with -tags statsview)"
)

// Address returns the address the server listens on. The empty string is the
// default address and a port on its own listens on localhost.
func Address(addr string) (string, error) {
	if addr == "" {
		return DefaultAddress, nil
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", curated.Errorf(InvalidAddress, addr)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return "", curated.Errorf(InvalidAddress, addr)
	}
	if host == "" {
		host = "localhost"
	}

	return net.JoinHostPort(host, port), nil
}
