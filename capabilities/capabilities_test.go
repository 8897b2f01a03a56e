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

package capabilities_test

import (
	"testing"

	"github.com/jetsetilly/glfbo/capabilities"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/test"
)

func offscreen() capabilities.Capabilities {
	c := capabilities.Default()
	c.Onscreen = false
	return c
}

func TestDefault(t *testing.T) {
	c := capabilities.Default()
	test.ExpectEquality(t, c.Onscreen, true)
	test.ExpectEquality(t, c.DoubleBuffered, true)
	test.ExpectEquality(t, c.DepthBits, 16)
	test.ExpectEquality(t, c.String(), "rgba 8/8/8/0, depth 16, stencil 0, dbl, hw, on-scr [WINDOW]")
}

func TestBackgroundOpaque(t *testing.T) {
	c := capabilities.Default()
	c.SetBackgroundOpaque(false)
	test.ExpectEquality(t, c.AlphaBits, 1)

	// FixOpaque keeps the requested alpha bits
	c = capabilities.Default()
	c = capabilities.FixOpaque(c, false)
	test.ExpectEquality(t, c.BackgroundOpaque, false)
	test.ExpectEquality(t, c.AlphaBits, 0)
}

func TestSamples(t *testing.T) {
	c := capabilities.Default()
	c.SetSamples(4)
	test.ExpectEquality(t, c.SampleBuffers, true)
	c.SetSamples(-1)
	test.ExpectEquality(t, c.Samples, 0)
	test.ExpectEquality(t, c.SampleBuffers, false)
}

func TestAttributeBits(t *testing.T) {
	test.ExpectEquality(t, capabilities.AttributeBitsString(capabilities.AllBits), "WINDOW, BITMAP, PBUFFER, FBO")
	test.ExpectEquality(t, capabilities.AttributeBitsString(0), "")

	b, err := capabilities.ExclusiveAttributeBits(false, true, true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, capabilities.FBOBit)

	b, err = capabilities.ExclusiveAttributeBits(true, true, true, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, capabilities.WindowBit)

	_, err = capabilities.ExclusiveAttributeBits(false, false, false, false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, capabilities.EmptyAttributeBits))

	c := capabilities.FixAttributeBits(capabilities.PBufferBit, false, capabilities.Default())
	test.ExpectEquality(t, c.Onscreen, false)
	test.ExpectEquality(t, c.PBuffer, true)
	test.ExpectEquality(t, c.HardwareAccelerated, false)
}

func TestFixOffscreen(t *testing.T) {
	test.ExpectSuccess(t, capabilities.IsOffscreenAutoSelection(offscreen()))

	// automatic selection prefers the FBO
	c := capabilities.FixOffscreen(offscreen(), true, true)
	test.ExpectEquality(t, c.FBO, true)
	test.ExpectEquality(t, c.PBuffer, false)
	test.ExpectEquality(t, c.Bitmap, false)
	test.ExpectEquality(t, c.DoubleBuffered, true)

	// then the pbuffer
	c = capabilities.FixOffscreen(offscreen(), false, true)
	test.ExpectEquality(t, c.FBO, false)
	test.ExpectEquality(t, c.PBuffer, true)

	// then the bitmap, which is never double buffered
	c = capabilities.FixOffscreen(offscreen(), false, false)
	test.ExpectEquality(t, c.Bitmap, true)
	test.ExpectEquality(t, c.DoubleBuffered, false)

	// an explicit bitmap request is honoured even if an FBO is available
	r := offscreen()
	r.Bitmap = true
	c = capabilities.FixOffscreen(r, true, true)
	test.ExpectEquality(t, c.FBO, false)
	test.ExpectEquality(t, c.Bitmap, true)

	// an explicit FBO request falls back when FBOs are not available
	r = offscreen()
	r.FBO = true
	c = capabilities.FixOffscreen(r, false, false)
	test.ExpectEquality(t, c.FBO, false)
	test.ExpectEquality(t, c.Bitmap, false)
	test.ExpectEquality(t, c.PBuffer, false)
}

func TestFix(t *testing.T) {
	// onscreen requests are untouched
	r := capabilities.Default()
	r.PBuffer = true
	c := capabilities.Fix(r, true, true)
	test.ExpectEquality(t, c, r)

	c = capabilities.Fix(offscreen(), true, false)
	test.ExpectEquality(t, c.FBO, true)

	c = capabilities.FixOnscreen(c)
	test.ExpectEquality(t, c.Onscreen, true)
	test.ExpectEquality(t, c.FBO, false)

	c = capabilities.FixPBuffer(c)
	test.ExpectEquality(t, c.Onscreen, false)
	test.ExpectEquality(t, c.PBuffer, true)

	c = capabilities.FixDoubleBuffered(c, false)
	test.ExpectEquality(t, c.DoubleBuffered, false)

	bits, err := c.ExclusiveAttributeBits()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, bits, capabilities.PBufferBit)
}
