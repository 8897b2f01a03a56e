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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/statsview"
	"github.com/jetsetilly/glfbo/test"
)

func TestAddress(t *testing.T) {
	for _, c := range []struct {
		addr     string
		expected string
	}{
		{"", statsview.DefaultAddress},
		{":8080", "localhost:8080"},
		{"127.0.0.1:9000", "127.0.0.1:9000"},
		{"[::1]:9000", "[::1]:9000"},
	} {
		a, err := statsview.Address(c.addr)
		test.DemandSuccess(t, err, c.addr)
		test.ExpectEquality(t, a, c.expected, c.addr)
	}

	for _, addr := range []string{"localhost", ":0", ":70000", "host:port"} {
		_, err := statsview.Address(addr)
		test.ExpectSuccess(t, curated.Is(err, statsview.InvalidAddress), addr)
	}
}
