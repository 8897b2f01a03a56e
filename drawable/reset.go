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
	"github.com/jetsetilly/glfbo/glapi"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/surface"
)

// contextGuard makes a context current and later restores the context that
// was current on the goroutine beforehand.
type contextGuard struct {
	own      *glcontext.Context
	prev     *glcontext.Context
	acquired bool

	// recursion depth of prev. making own current releases prev entirely
	depth int
}

func acquire(ctx *glcontext.Context) (*contextGuard, error) {
	g := &contextGuard{
		own:  ctx,
		prev: glcontext.Current(),
	}
	if g.prev != nil && g.prev != ctx {
		g.depth = max(g.prev.Depth(), 1)
	}
	if err := ctx.MakeCurrent(); err != nil {
		return g, err
	}
	g.acquired = true
	return g, nil
}

// restore must be called whether or not acquire() succeeded.
func (g *contextGuard) restore() error {
	var err error
	if g.acquired {
		err = g.own.Release()
	}
	if g.prev != nil && g.prev != g.own {
		for i := 0; i < g.depth; i++ {
			if perr := g.prev.MakeCurrent(); perr != nil {
				if err == nil {
					err = perr
				}
				break
			}
		}
	}
	return err
}

// ResetSize resets the framebuffers to the current size of the surface.
func (d *Drawable) ResetSize(ctx *glcontext.Context) error {
	return d.reset(ctx, d.samples)
}

// SetSampleCount changes the number of samples. Changing between zero and a
// non-zero number of samples recreates the framebuffer set. Does nothing if
// the number of samples is unchanged.
func (d *Drawable) SetSampleCount(ctx *glcontext.Context, samples int) error {
	samples = max(samples, 0)
	if d.ring != nil {
		samples = min(samples, d.maxSamples)
	}
	if samples == d.samples {
		return nil
	}

	// the new count is used when the framebuffers are created
	if d.ring == nil {
		d.samples = samples
		return nil
	}

	return d.reset(ctx, samples)
}

// Resize the surface and the framebuffers. The surface must have a mutable
// size.
func (d *Drawable) Resize(ctx *glcontext.Context, width int, height int) error {
	if err := d.surface.Lock(); err != nil {
		return err
	}
	defer d.surface.Unlock()

	sz, ok := d.surface.Upstream().(surface.MutableSize)
	if !ok {
		return curated.Errorf(NotResizeable)
	}
	sz.SetSize(width, height)
	logger.Logf(d.debug, logTag, "resize: %dx%d", width, height)

	if ctx != nil && ctx.IsCreated() {
		return d.ResetSize(ctx)
	}
	return nil
}

// reset the framebuffers to the size of the surface and to the number of
// samples. Does nothing if the drawable has not been initialised.
func (d *Drawable) reset(ctx *glcontext.Context, samples int) error {
	if d.ring == nil {
		return nil
	}
	if ctx == nil {
		return curated.Errorf(NoContext)
	}

	g, resetErr := acquire(ctx)
	if resetErr == nil {
		resetErr = d.reconfigure(ctx.GL(), samples)
	}
	releaseErr := g.restore()

	switch {
	case resetErr != nil && releaseErr != nil:
		return curated.Errorf(ResetAndReleaseFailed, resetErr, releaseErr)
	case resetErr != nil:
		return curated.Errorf(ResetFailed, resetErr)
	case releaseErr != nil:
		return curated.Errorf(ReleaseFailed, releaseErr)
	}
	return nil
}

// reconfigure requires the context to be current.
func (d *Drawable) reconfigure(gl glapi.GL, samples int) error {
	d.maxSamples = int(gl.GetInteger(glapi.MAX_SAMPLES))
	samples = min(max(samples, 0), d.maxSamples)

	// making the context current bound the back buffer. it must not be
	// swapped when the context is released
	d.bound = false

	if (d.samples > 0) != (samples > 0) {
		logger.Logf(d.debug, logTag, "reset: mode switch from %d to %d samples", d.samples, samples)
		if err := d.initialise(false, gl); err != nil {
			return err
		}
		d.samples = samples
		return d.initialise(true, gl)
	}

	logger.Logf(d.debug, logTag, "reset: %dx%d, %d samples", d.Width(), d.Height(), samples)
	d.samples = samples

	r := d.ring
	if r.size() > 1 {
		d.pending = r.frontSlot()
	}
	for i, fbo := range r.slots {
		if r.size() > 1 && i == r.front {
			continue
		}
		if err := d.resetSlot(gl, i, fbo); err != nil {
			return err
		}
	}

	d.updateCapabilities()

	return nil
}
