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

package drawable

import (
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/fbobject"
	"github.com/jetsetilly/glfbo/glapi"
	"github.com/jetsetilly/glfbo/logger"
)

// number of bits in the depth attachment of each framebuffer
const depthBits = 24

// initialise creates or destroys the framebuffer set.
func (d *Drawable) initialise(realize bool, gl glapi.GL) error {
	if !realize {
		if d.ring != nil {
			for _, fbo := range d.ring.slots {
				fbo.Destroy(gl)
			}
		}
		d.ring = nil
		d.pending = nil
		d.bound = false
		logger.Log(d.debug, logTag, "unrealized: framebuffers destroyed")
		return nil
	}

	d.maxSamples = int(gl.GetInteger(glapi.MAX_SAMPLES))
	d.samples = min(d.samples, d.maxSamples)

	size := 1
	if d.samples == 0 && d.doubleBuffered {
		size = 2
	}
	d.ring = newRing(size)

	for i, fbo := range d.ring.slots {
		if err := d.createSlot(gl, i, fbo); err != nil {
			_ = d.initialise(false, gl)
			return err
		}
	}

	// the front buffer must be readable before the first swap
	d.ring.frontSlot().Sync(gl)

	d.bound = false
	d.updateCapabilities()

	logger.Logf(d.debug, logTag, "realized: %s", d)

	return nil
}

// createSlot creates the framebuffer and attachments for slot i of the ring.
func (d *Drawable) createSlot(gl glapi.GL, i int, fbo *fbobject.Object) error {
	caps := d.surface.Capabilities()

	if err := fbo.Reset(gl, d.Width(), d.Height(), d.samples); err != nil {
		return err
	}

	alpha := caps.AlphaBits > 0
	var err error
	if d.samples > 0 {
		_, err = fbo.AttachColorbuffer(gl, alpha)
	} else {
		_, err = fbo.AttachTexture2D(gl, alpha)
	}
	if err != nil {
		return err
	}

	kind := fbobject.Depth
	if caps.StencilBits > 0 {
		kind = fbobject.DepthStencil
	}
	if _, err := fbo.AttachRenderbuffer(gl, kind, depthBits); err != nil {
		return err
	}

	return d.checkSamples(i, fbo)
}

// resetSlot resizes the framebuffer in slot i to the size and number of
// samples of the drawable.
func (d *Drawable) resetSlot(gl glapi.GL, i int, fbo *fbobject.Object) error {
	if err := fbo.Reset(gl, d.Width(), d.Height(), d.samples); err != nil {
		return err
	}
	logger.Logf(d.debug, logTag, "slot %d reset: %s", i, fbo)
	return d.checkSamples(i, fbo)
}

func (d *Drawable) checkSamples(i int, fbo *fbobject.Object) error {
	if fbo.Samples() != d.samples {
		return curated.Errorf(SampleMismatch, i, d.samples, fbo.Samples())
	}
	return nil
}

// updateCapabilities records the format achieved by the first slot in the
// capabilities of the surface.
func (d *Drawable) updateCapabilities() {
	caps := d.surface.Capabilities()
	d.ring.slots[0].Format(&caps)

	// resolving the multisample buffer is a second stage so the drawable is
	// always double buffered when multisampling
	caps.DoubleBuffered = d.doubleBuffered || d.samples > 0

	d.surface.SetCapabilities(caps)
}
