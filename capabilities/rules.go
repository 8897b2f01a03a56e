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
	"runtime"
	"strings"

	"github.com/jetsetilly/glfbo/curated"
)

// Surface kind bits.
const (
	WindowBit = 1 << iota
	BitmapBit
	PBufferBit
	FBOBit

	AllBits = WindowBit | BitmapBit | PBufferBit | FBOBit
)

// EmptyAttributeBits is returned by ExclusiveAttributeBits when no surface kind
// has been specified.
const EmptyAttributeBits = "capabilities: empty attribute bitmask"

// native bitmaps are not available on macOS. the pbuffer is used instead
var isMacOS = runtime.GOOS == "darwin"

// AttributeBitsString returns a comma separated list of the surface kinds in
// bits.
func AttributeBitsString(bits int) string {
	var s []string
	if bits&WindowBit != 0 {
		s = append(s, "WINDOW")
	}
	if bits&BitmapBit != 0 {
		s = append(s, "BITMAP")
	}
	if bits&PBufferBit != 0 {
		s = append(s, "PBUFFER")
	}
	if bits&FBOBit != 0 {
		s = append(s, "FBO")
	}
	return strings.Join(s, ", ")
}

// ExclusiveAttributeBits returns a bitmask with exactly one bit set. The
// priority order is onscreen, FBO, pbuffer, bitmap.
func ExclusiveAttributeBits(onscreen, fbo, pbuffer, bitmap bool) (int, error) {
	switch {
	case onscreen:
		return WindowBit, nil
	case fbo:
		return FBOBit, nil
	case pbuffer:
		return PBufferBit, nil
	case bitmap:
		return BitmapBit, nil
	}
	return 0, curated.Errorf(EmptyAttributeBits)
}

// ExclusiveAttributeBits returns the single surface kind bit for the
// capabilities.
func (c Capabilities) ExclusiveAttributeBits() (int, error) {
	return ExclusiveAttributeBits(c.Onscreen, c.FBO, c.PBuffer, c.Bitmap)
}

// FixAttributeBits sets the surface kind flags from bits. The hardware
// accelerated flag is cleared if the platform does not provide a hardware
// rasterizer.
func FixAttributeBits(bits int, hardwareRasterizer bool, c Capabilities) Capabilities {
	c.Bitmap = bits&BitmapBit != 0
	c.PBuffer = bits&PBufferBit != 0
	c.FBO = bits&FBOBit != 0

	// onscreen is set last because it reflects availability
	c.Onscreen = bits&WindowBit != 0

	if !hardwareRasterizer {
		c.HardwareAccelerated = false
	}

	return c
}

// Fix the requested capabilities. Only offscreen requests are adjusted, an
// onscreen request keeps its offscreen flags.
func Fix(requested Capabilities, fboAvailable, pbufferAvailable bool) Capabilities {
	if !requested.Onscreen {
		return FixOffscreen(requested, fboAvailable, pbufferAvailable)
	}
	return requested
}

// FixOnscreen returns an onscreen request with every offscreen kind cleared.
func FixOnscreen(requested Capabilities) Capabilities {
	requested.Onscreen = true
	requested.FBO = false
	requested.PBuffer = false
	requested.Bitmap = false
	return requested
}

// IsOffscreenAutoSelection returns true if the request is offscreen with no
// particular offscreen kind asked for.
func IsOffscreenAutoSelection(requested Capabilities) bool {
	return !requested.Onscreen && !requested.FBO && !requested.PBuffer && !requested.Bitmap
}

// FixOffscreen selects the offscreen surface kind. If the request does not
// name a kind then the first available of FBO, pbuffer, bitmap is chosen.
// Otherwise the named kind is used if available, falling back along the same
// order. Bitmap surfaces are never double buffered.
func FixOffscreen(requested Capabilities, fboAvailable, pbufferAvailable bool) Capabilities {
	auto := !requested.FBO && !requested.PBuffer && !requested.Bitmap

	requestedPBuffer := requested.PBuffer || isMacOS

	useFBO := fboAvailable && (auto || requested.FBO)
	usePBuffer := !useFBO && pbufferAvailable && (auto || requestedPBuffer)
	useBitmap := !useFBO && !usePBuffer && (auto || requested.Bitmap)

	requested.Onscreen = false
	requested.FBO = useFBO
	requested.PBuffer = usePBuffer
	requested.Bitmap = useBitmap
	if useBitmap {
		requested.DoubleBuffered = false
	}

	return requested
}

// FixPBuffer returns a pbuffer request.
func FixPBuffer(requested Capabilities) Capabilities {
	requested.Onscreen = false
	requested.FBO = false
	requested.PBuffer = true
	requested.Bitmap = false
	return requested
}

// FixOpaque sets the background opaque flag while preserving the alpha bits
// of the request.
func FixOpaque(requested Capabilities, opaque bool) Capabilities {
	if requested.BackgroundOpaque != opaque {
		alphaBits := requested.AlphaBits
		requested.SetBackgroundOpaque(opaque)
		requested.AlphaBits = alphaBits
	}
	return requested
}

// FixDoubleBuffered sets the double buffered flag.
func FixDoubleBuffered(requested Capabilities, doubleBuffered bool) Capabilities {
	requested.DoubleBuffered = doubleBuffered
	return requested
}
