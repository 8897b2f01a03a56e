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

package capabilities

import (
	"testing"

	"github.com/jetsetilly/glfbo/test"
)

func TestFixOffscreenMacOS(t *testing.T) {
	defer func(v bool) { isMacOS = v }(isMacOS)
	isMacOS = true

	// an explicit bitmap request becomes a pbuffer on macOS
	r := Default()
	r.Onscreen = false
	r.Bitmap = true
	c := FixOffscreen(r, false, true)
	test.ExpectEquality(t, c.PBuffer, true)
	test.ExpectEquality(t, c.Bitmap, false)
}
