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

//go:build !statsview

package statsview_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/statsview"
	"github.com/jetsetilly/glfbo/test"
)

func TestLaunchUnavailable(t *testing.T) {
	var b bytes.Buffer
	test.ExpectFailure(t, statsview.Available())
	test.ExpectSuccess(t, curated.Is(statsview.Launch(&b, ""), statsview.NotAvailable))
	test.ExpectSuccess(t, curated.Is(statsview.Launch(&b, "nope"), statsview.InvalidAddress))
	test.ExpectEquality(t, b.Len(), 0)
}
