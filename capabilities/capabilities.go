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
	"fmt"
	"strings"
)

// Capabilities of a GL drawable.
type Capabilities struct {
	RedBits   int
	GreenBits int
	BlueBits  int
	AlphaBits int

	DepthBits   int
	StencilBits int

	// number of samples for multisample anti-aliasing. zero for a single
	// sample surface
	Samples       int
	SampleBuffers bool

	DoubleBuffered bool

	// the kind of surface. for a request, none of the offscreen kinds being
	// set means "choose automatically"
	Onscreen bool
	FBO      bool
	PBuffer  bool
	Bitmap   bool

	HardwareAccelerated bool
	BackgroundOpaque    bool
}

// Default returns the default request. An 8 bit RGB, double buffered,
// hardware accelerated, onscreen surface with a 16 bit depth buffer.
func Default() Capabilities {
	return Capabilities{
		RedBits:             8,
		GreenBits:           8,
		BlueBits:            8,
		DepthBits:           16,
		DoubleBuffered:      true,
		Onscreen:            true,
		HardwareAccelerated: true,
		BackgroundOpaque:    true,
	}
}

// SetBackgroundOpaque sets the opaque flag. A transparent background needs at
// least one alpha bit.
func (c *Capabilities) SetBackgroundOpaque(opaque bool) {
	c.BackgroundOpaque = opaque
	if !opaque && c.AlphaBits == 0 {
		c.AlphaBits = 1
	}
}

// SetSamples sets the number of samples and the sample buffers flag.
func (c *Capabilities) SetSamples(samples int) {
	if samples < 0 {
		samples = 0
	}
	c.Samples = samples
	c.SampleBuffers = samples > 0
}

func (c Capabilities) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("rgba %d/%d/%d/%d, depth %d, stencil %d",
		c.RedBits, c.GreenBits, c.BlueBits, c.AlphaBits, c.DepthBits, c.StencilBits))
	if c.SampleBuffers {
		s.WriteString(fmt.Sprintf(", samples %d", c.Samples))
	}
	if c.DoubleBuffered {
		s.WriteString(", dbl")
	} else {
		s.WriteString(", one")
	}
	if c.HardwareAccelerated {
		s.WriteString(", hw")
	} else {
		s.WriteString(", sw")
	}
	if !c.BackgroundOpaque {
		s.WriteString(", transparent")
	}
	if c.Onscreen {
		s.WriteString(", on-scr")
	} else {
		s.WriteString(", offscr")
	}
	k := AttributeBitsString(c.attributeBits())
	if k != "" {
		s.WriteString(fmt.Sprintf(" [%s]", k))
	}
	return s.String()
}

// attributeBits returns every surface kind bit that is set.
func (c Capabilities) attributeBits() int {
	var bits int
	if c.Onscreen {
		bits |= WindowBit
	}
	if c.FBO {
		bits |= FBOBit
	}
	if c.PBuffer {
		bits |= PBufferBit
	}
	if c.Bitmap {
		bits |= BitmapBit
	}
	return bits
}
