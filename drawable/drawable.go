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
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/glfbo/capabilities"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/fbobject"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/surface"
)

// Parent is the drawable whose context creation is used by the offscreen
// drawable.
type Parent interface {
	CreateContext(share *glcontext.Context) (*glcontext.Context, error)
	SetRealized(realized bool) error
}

// Config for a new drawable.
type Config struct {
	// texture unit used when binding the front buffer texture during a swap
	TextureUnit int

	// log every state transition and check the consistency of the ring on
	// every swap
	Debug bool
}

// debug implements the logger.Permission interface
type debug bool

func (d debug) AllowLogging() bool {
	return bool(d)
}

// log tag for all drawable entries
const logTag = "fbo"

// PresentFunc is called by SwapBuffers() after the internal swap.
type PresentFunc func(doubleBuffered bool) error

// Which buffer is being accessed by Buffer() and TextureAttachment().
type Which int

// List of valid Which values.
const (
	Front Which = iota
	Back
)

func (w Which) String() string {
	switch w {
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return fmt.Sprintf("buffer %d", int(w))
}

// Drawable is an offscreen drawable backed by framebuffer objects.
type Drawable struct {
	parent  Parent
	surface *surface.Proxy
	debug   debug

	// requested number of samples. clamped to maxSamples once the framebuffers
	// have been created
	samples    int
	maxSamples int

	// whether double buffering was requested. the chosen capabilities always
	// report double buffering for multisample framebuffers so the original
	// request is kept here
	doubleBuffered bool

	texUnit int
	present PresentFunc

	// nil when not initialised
	ring *ring

	// framebuffer waiting to be reset on the next swap
	pending *fbobject.Object

	// the back buffer has been bound by ContextMadeCurrent()
	bound bool
}

// New is the preferred method of initialisation for the Drawable type. The
// capabilities are the chosen capabilities of the surface and the surface
// capabilities are updated to the same value.
func New(parent Parent, surf *surface.Proxy, caps capabilities.Capabilities, cfg Config) (*Drawable, error) {
	if parent == nil {
		return nil, curated.Errorf(NoParent)
	}

	d := &Drawable{
		parent:         parent,
		surface:        surf,
		debug:          debug(cfg.Debug),
		doubleBuffered: caps.DoubleBuffered,
		texUnit:        cfg.TextureUnit,
	}
	if caps.SampleBuffers {
		d.samples = max(caps.Samples, 0)
	}

	surf.SetCapabilities(caps)
	logger.Logf(d.debug, logTag, "new: %s", caps)

	return d, nil
}

// ContextRealized implements the glcontext.Drawable interface.
func (d *Drawable) ContextRealized(ctx *glcontext.Context, realized bool) error {
	return d.initialise(realized, ctx.GL())
}

// ContextMadeCurrent implements the glcontext.Drawable interface.
func (d *Drawable) ContextMadeCurrent(ctx *glcontext.Context, current bool) error {
	gl := ctx.GL()

	if current {
		if d.ring == nil {
			return curated.Errorf(NotInitialised)
		}
		d.ring.backSlot().Bind(gl)
		d.bound = true
		logger.Logf(d.debug, logTag, "made current: bound back buffer %d", d.ring.back)
		return nil
	}

	if !d.bound {
		return nil
	}
	d.bound = false
	logger.Log(d.debug, logTag, "released: swapping")
	return d.swap(gl)
}

// DefaultDrawFramebuffer implements the glcontext.Drawable interface.
func (d *Drawable) DefaultDrawFramebuffer() uint32 {
	if d.ring == nil {
		return 0
	}
	return d.ring.backSlot().WriteFramebuffer()
}

// DefaultReadFramebuffer implements the glcontext.Drawable interface.
func (d *Drawable) DefaultReadFramebuffer() uint32 {
	if d.ring == nil {
		return 0
	}
	return d.ring.frontSlot().ReadFramebuffer()
}

// CreateContext creates a context with the parent drawable and sets this
// drawable as its target.
func (d *Drawable) CreateContext(share *glcontext.Context) (*glcontext.Context, error) {
	ctx, err := d.parent.CreateContext(share)
	if err != nil {
		return nil, err
	}
	ctx.SetDrawable(d)
	return ctx, nil
}

// SetRealized realizes or unrealizes the parent drawable.
func (d *Drawable) SetRealized(realized bool) error {
	return d.parent.SetRealized(realized)
}

// SetTextureUnit sets the texture unit used to bind the front buffer texture.
func (d *Drawable) SetTextureUnit(unit int) {
	d.texUnit = unit
}

// SetPresentCallback sets the function called by SwapBuffers(). A nil value
// removes the callback.
func (d *Drawable) SetPresentCallback(present PresentFunc) {
	d.present = present
}

// Buffer returns the framebuffer for the front or back buffer. For
// multisample drawables the front buffer is the sampling sink. Returns nil
// if the drawable has not been initialised.
func (d *Drawable) Buffer(which Which) (*fbobject.Object, error) {
	if which != Front && which != Back {
		return nil, curated.Errorf(InvalidBuffer, int(which))
	}
	if d.ring == nil {
		return nil, nil
	}
	if which == Back {
		return d.ring.backSlot(), nil
	}
	if d.samples > 0 {
		return d.ring.slots[0].SamplingSinkFBO(), nil
	}
	return d.ring.frontSlot(), nil
}

// TextureAttachment returns the texture of the front or back buffer. There is
// no back buffer texture for multisample drawables. Returns nil if the
// drawable has not been initialised.
func (d *Drawable) TextureAttachment(which Which) (*fbobject.Texture, error) {
	switch which {
	case Front:
	case Back:
		if d.samples > 0 {
			return nil, curated.Errorf(MultisampleBackTexture, d.samples)
		}
	default:
		return nil, curated.Errorf(InvalidBuffer, int(which))
	}

	if d.ring == nil {
		return nil, nil
	}

	if which == Front && d.samples > 0 {
		return d.ring.slots[0].SamplingSink(), nil
	}

	fbo := d.ring.frontSlot()
	if which == Back {
		fbo = d.ring.backSlot()
	}
	if tex, ok := fbo.Colorbuffer().(*fbobject.Texture); ok {
		return tex, nil
	}
	return nil, nil
}

// IsInitialised returns true if the framebuffers have been created.
func (d *Drawable) IsInitialised() bool {
	return d.ring != nil
}

// Samples returns the number of samples of the framebuffers.
func (d *Drawable) Samples() int {
	return d.samples
}

// TextureUnit returns the texture unit used to bind the front buffer texture.
func (d *Drawable) TextureUnit() int {
	return d.texUnit
}

// Width of the drawable.
func (d *Drawable) Width() int {
	return d.surface.Width()
}

// Height of the drawable.
func (d *Drawable) Height() int {
	return d.surface.Height()
}

// Surface returns the surface of the drawable.
func (d *Drawable) Surface() *surface.Proxy {
	return d.surface
}

func (d *Drawable) String() string {
	if d.ring == nil {
		return fmt.Sprintf("fbo drawable: %dx%d, %d samples, not initialised", d.Width(), d.Height(), d.samples)
	}
	pending := -1
	if d.pending != nil {
		pending = d.ring.index(d.pending)
	}
	return fmt.Sprintf("fbo drawable: %dx%d, %d samples, %d buffers, back %d, front %d, pending %d, bound %v",
		d.Width(), d.Height(), d.samples, d.ring.size(), d.ring.back, d.ring.front, pending, d.bound)
}

// DumpState writes a graphviz description of the drawable and its
// framebuffers.
func (d *Drawable) DumpState(w io.Writer) {
	memviz.Map(w, d)
}
