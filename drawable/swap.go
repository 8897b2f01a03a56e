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
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/logger"
)

// SwapBuffers swaps the front and back buffers if the drawable's context is
// current on the calling goroutine and the back buffer is bound. The present
// callback is then called, if one has been set.
func (d *Drawable) SwapBuffers() error {
	ctx := glcontext.Current()
	if ctx != nil && ctx.Drawable() == glcontext.Drawable(d) && d.bound {
		d.bound = false
		if err := d.swap(ctx.GL()); err != nil {
			return err
		}
	}

	if d.present != nil {
		return d.present(d.surface.Capabilities().DoubleBuffered)
	}
	return nil
}

// swap the buffers. the bound flag has already been cleared by the caller
func (d *Drawable) swap(gl glapi.GL) error {
	r := d.ring
	r.backSlot().MarkUnbound()

	// the front buffer has been presented and is about to become the back
	// buffer so it can now be reset
	if d.pending != nil {
		fbo := d.pending
		d.pending = nil
		if err := d.resetSlot(gl, r.index(fbo), fbo); err != nil {
			return err
		}
		logger.Logf(d.debug, logTag, "swap: applied pending reset to slot %d", r.index(fbo))
	}

	if bool(d.debug) && !r.consistent() {
		return curated.Errorf(RingInconsistent, r.front, r.back, r.size())
	}

	r.rotate()

	var cb fbobject.Colorbuffer
	if d.samples > 0 {
		if tex := r.frontSlot().SamplingSink(); tex != nil {
			cb = tex
		}
	} else {
		cb = r.frontSlot().Colorbuffer()
	}
	if cb == nil {
		return curated.Errorf(FrontColorbufferMissing, d.samples)
	}
	tex, ok := cb.(*fbobject.Texture)
	if !ok {
		return curated.Errorf(FrontColorbufferNotTexture, cb)
	}

	gl.ActiveTexture(glapi.TEXTURE0 + uint32(d.texUnit))
	if err := r.frontSlot().Use(gl, tex); err != nil {
		return err
	}

	logger.Logf(d.debug, logTag, "swap: back %d, front %d", r.back, r.front)

	return nil
}
