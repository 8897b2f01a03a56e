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

package fbobject

import (
	"fmt"

	"github.com/jetsetilly/glfbo/capabilities"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glapi"
)

// Object is a framebuffer object with its attachments.
type Object struct {
	name    uint32
	created bool

	width  int32
	height int32

	// requested number of samples, clamped to maxSamples
	samples    int32
	maxSamples int32

	color Colorbuffer
	alpha bool
	depth *Renderbuffer

	// resolve target for multisample framebuffers
	sink *Object

	bound bool
}

// New is the preferred method of initialisation for the Object type. No GL
// objects are created until the first call to Reset().
func New() *Object {
	return &Object{}
}

func (o *Object) String() string {
	if !o.created {
		return "fbo: not created"
	}
	s := fmt.Sprintf("fbo %d: %dx%d, %d samples", o.name, o.width, o.height, o.Samples())
	if o.color != nil {
		s = fmt.Sprintf("%s, %s", s, o.color)
	}
	if o.depth != nil {
		s = fmt.Sprintf("%s, %s", s, o.depth)
	}
	if o.sink != nil {
		s = fmt.Sprintf("%s, sink [%s]", s, o.sink)
	}
	return s
}

// Reset the framebuffer to the specified size and number of samples. The
// framebuffer and its attachments are created on the first call.
//
// The number of samples is clamped to the maximum supported by the driver.
// Existing attachments are given new storage, after which the contents of
// the framebuffer are cleared. If the change is between a single sample and
// a multisample framebuffer then the colour attachment is recreated as a
// texture or as a multisample renderbuffer as appropriate.
func (o *Object) Reset(gl glapi.GL, width int, height int, samples int) error {
	if !o.created {
		o.maxSamples = gl.GetInteger(glapi.MAX_SAMPLES)
		o.name = gl.GenFramebuffer()
		o.created = true
	}

	maxSize := gl.GetInteger(glapi.MAX_RENDERBUFFER_SIZE)
	if int32(width) > maxSize || int32(height) > maxSize {
		return curated.Errorf(SizeExceeded, width, height, maxSize)
	}
	o.width = int32(max(width, 1))
	o.height = int32(max(height, 1))

	newSamples := int32(min(max(samples, 0), int(o.maxSamples)))
	modeChange := (newSamples > 0) != (o.samples > 0)
	o.samples = newSamples

	wasBound := o.bound
	o.Bind(gl)

	if o.depth != nil {
		o.depth.store(gl, o.width, o.height, o.samples)
	}

	if o.color != nil {
		if modeChange {
			o.detachColorbuffer(gl)
			var err error
			if o.samples > 0 {
				_, err = o.AttachColorbuffer(gl, o.alpha)
			} else {
				_, err = o.AttachTexture2D(gl, o.alpha)
			}
			if err != nil {
				return err
			}
		} else {
			switch c := o.color.(type) {
			case *Texture:
				c.store(gl, o.width, o.height)
			case *Renderbuffer:
				c.store(gl, o.width, o.height, o.samples)
			}
		}
	}

	if err := o.syncSink(gl); err != nil {
		return err
	}

	// syncSink() may have bound a different framebuffer
	o.Bind(gl)

	if o.color != nil {
		if err := o.validate(gl); err != nil {
			return err
		}
		gl.Viewport(0, 0, o.width, o.height)
		gl.ClearColor(0, 0, 0, 0)
		gl.Clear(glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT | glapi.STENCIL_BUFFER_BIT)
	}

	if !wasBound {
		o.Unbind(gl)
	}

	return nil
}

// syncSink creates, resizes or destroys the sampling sink so that it matches
// the state of the Object.
func (o *Object) syncSink(gl glapi.GL) error {
	if o.samples == 0 || o.color == nil {
		if o.sink != nil {
			o.sink.Destroy(gl)
			o.sink = nil
		}
		return nil
	}

	if o.sink == nil {
		o.sink = New()
		if err := o.sink.Reset(gl, int(o.width), int(o.height), 0); err != nil {
			return err
		}
		if _, err := o.sink.AttachTexture2D(gl, o.alpha); err != nil {
			return err
		}
		return nil
	}

	return o.sink.Reset(gl, int(o.width), int(o.height), 0)
}

// validate checks the completeness of the framebuffer, which must be bound.
func (o *Object) validate(gl glapi.GL) error {
	status := gl.CheckFramebufferStatus(glapi.FRAMEBUFFER)
	if status != glapi.FRAMEBUFFER_COMPLETE {
		return curated.Errorf(Incomplete, glapi.StatusString(status))
	}
	return nil
}

// AttachTexture2D creates a texture and attaches it as the colour buffer,
// replacing any existing colour buffer. Fails if the framebuffer is
// multisample.
func (o *Object) AttachTexture2D(gl glapi.GL, alpha bool) (*Texture, error) {
	if !o.created {
		return nil, curated.Errorf(NotCreated)
	}
	if o.samples > 0 {
		return nil, curated.Errorf(TextureOnMultisample, o.samples)
	}

	o.detachColorbuffer(gl)

	tex := &Texture{
		Name:           gl.GenTexture(),
		InternalFormat: glapi.RGB8,
		DataFormat:     glapi.RGB,
		DataType:       glapi.UNSIGNED_BYTE,
	}
	if alpha {
		tex.InternalFormat = glapi.RGBA8
		tex.DataFormat = glapi.RGBA
	}

	gl.BindTexture(glapi.TEXTURE_2D, tex.Name)
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MAG_FILTER, glapi.NEAREST)
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MIN_FILTER, glapi.NEAREST)
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_S, glapi.CLAMP_TO_EDGE)
	gl.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_T, glapi.CLAMP_TO_EDGE)
	tex.store(gl, o.width, o.height)

	o.color = tex
	o.alpha = alpha

	err := o.attach(gl, func() {
		gl.FramebufferTexture2D(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, tex.Name, 0)
	})
	if err != nil {
		return nil, err
	}

	return tex, nil
}

// AttachColorbuffer creates a colour renderbuffer with the number of samples
// of the framebuffer and attaches it, replacing any existing colour buffer.
// If the framebuffer is multisample the sampling sink is created.
func (o *Object) AttachColorbuffer(gl glapi.GL, alpha bool) (*Renderbuffer, error) {
	if !o.created {
		return nil, curated.Errorf(NotCreated)
	}

	o.detachColorbuffer(gl)

	rb := &Renderbuffer{
		Name:           gl.GenRenderbuffer(),
		Kind:           Color,
		Bits:           24,
		InternalFormat: glapi.RGB8,
	}
	if alpha {
		rb.Bits = 32
		rb.InternalFormat = glapi.RGBA8
	}
	rb.store(gl, o.width, o.height, o.samples)

	o.color = rb
	o.alpha = alpha

	err := o.attach(gl, func() {
		gl.FramebufferRenderbuffer(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.RENDERBUFFER, rb.Name)
	})
	if err != nil {
		return nil, err
	}

	if err := o.syncSink(gl); err != nil {
		return nil, err
	}

	// syncSink() may have bound a different framebuffer
	if o.bound {
		o.Bind(gl)
	}

	return rb, nil
}

// AttachRenderbuffer creates a depth or depth-stencil renderbuffer and
// attaches it, replacing any existing depth attachment.
func (o *Object) AttachRenderbuffer(gl glapi.GL, kind Kind, bits int) (*Renderbuffer, error) {
	if !o.created {
		return nil, curated.Errorf(NotCreated)
	}

	format, ok := depthFormat(kind, bits)
	if !ok {
		return nil, curated.Errorf(UnsupportedDepthBits, bits, kind)
	}

	o.detachRenderbuffer(gl)

	rb := &Renderbuffer{
		Name:           gl.GenRenderbuffer(),
		Kind:           kind,
		Bits:           bits,
		InternalFormat: format,
	}
	rb.store(gl, o.width, o.height, o.samples)

	o.depth = rb

	err := o.attach(gl, func() {
		gl.FramebufferRenderbuffer(glapi.FRAMEBUFFER, rb.attachment(), glapi.RENDERBUFFER, rb.Name)
	})
	if err != nil {
		return nil, err
	}

	return rb, nil
}

// attach binds the framebuffer and calls the attach function. completeness is
// checked if a colour buffer is present
func (o *Object) attach(gl glapi.GL, attach func()) error {
	wasBound := o.bound
	o.Bind(gl)
	attach()

	var err error
	if o.color != nil {
		err = o.validate(gl)
	}

	if !wasBound {
		o.Unbind(gl)
	}
	return err
}

// DetachColorbuffer removes and deletes the colour buffer.
func (o *Object) DetachColorbuffer(gl glapi.GL) {
	if !o.created || o.color == nil {
		return
	}
	wasBound := o.bound
	o.Bind(gl)
	gl.FramebufferRenderbuffer(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.RENDERBUFFER, 0)
	o.detachColorbuffer(gl)
	if !wasBound {
		o.Unbind(gl)
	}
}

func (o *Object) detachColorbuffer(gl glapi.GL) {
	switch c := o.color.(type) {
	case *Texture:
		gl.DeleteTexture(c.Name)
	case *Renderbuffer:
		gl.DeleteRenderbuffer(c.Name)
	}
	o.color = nil
}

func (o *Object) detachRenderbuffer(gl glapi.GL) {
	if o.depth != nil {
		gl.DeleteRenderbuffer(o.depth.Name)
		o.depth = nil
	}
}

// Bind the framebuffer for drawing and reading.
func (o *Object) Bind(gl glapi.GL) {
	gl.BindFramebuffer(glapi.FRAMEBUFFER, o.name)
	o.bound = true
}

// Unbind the framebuffer by binding the default framebuffer. Does nothing if
// the framebuffer is not bound.
func (o *Object) Unbind(gl glapi.GL) {
	if !o.bound {
		return
	}
	gl.BindFramebuffer(glapi.FRAMEBUFFER, 0)
	o.bound = false
}

// MarkUnbound clears the bound state without any GL calls. Used when the
// caller knows that the binding is about to be replaced.
func (o *Object) MarkUnbound() {
	o.bound = false
	if o.sink != nil {
		o.sink.bound = false
	}
}

// IsBound returns true if the framebuffer is bound.
func (o *Object) IsBound() bool {
	return o.bound
}

// Sync prepares the framebuffer for reading. If the framebuffer is
// multisample the colour buffer is resolved into the sampling sink. In all
// cases the framebuffer is left unbound and the default framebuffer is bound.
func (o *Object) Sync(gl glapi.GL) {
	if o.samples > 0 && o.sink != nil {
		gl.BindFramebuffer(glapi.READ_FRAMEBUFFER, o.name)
		gl.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, o.sink.name)
		gl.BlitFramebuffer(0, 0, o.width, o.height, 0, 0, o.width, o.height,
			glapi.COLOR_BUFFER_BIT, glapi.NEAREST)
	}
	o.MarkUnbound()
	gl.BindFramebuffer(glapi.FRAMEBUFFER, 0)
}

// Use calls Sync() and then binds the texture to the active texture unit.
func (o *Object) Use(gl glapi.GL, tex *Texture) error {
	if tex == nil {
		return curated.Errorf(NoTexture)
	}
	o.Sync(gl)
	gl.BindTexture(glapi.TEXTURE_2D, tex.Name)
	return nil
}

// WriteFramebuffer returns the name of the framebuffer to draw to.
func (o *Object) WriteFramebuffer() uint32 {
	return o.name
}

// ReadFramebuffer returns the name of the framebuffer to read from. For
// multisample framebuffers this is the framebuffer of the sampling sink.
func (o *Object) ReadFramebuffer() uint32 {
	if o.samples > 0 && o.sink != nil {
		return o.sink.name
	}
	return o.name
}

// Colorbuffer returns the colour attachment. Returns nil if there is no
// colour attachment.
func (o *Object) Colorbuffer() Colorbuffer {
	return o.color
}

// SamplingSink returns the texture of the sampling sink. Returns nil if the
// framebuffer is not multisample or if the sink has no texture.
func (o *Object) SamplingSink() *Texture {
	if o.sink == nil {
		return nil
	}
	if tex, ok := o.sink.color.(*Texture); ok {
		return tex
	}
	return nil
}

// SamplingSinkFBO returns the sampling sink. Returns nil if the framebuffer
// is not multisample.
func (o *Object) SamplingSinkFBO() *Object {
	return o.sink
}

// DepthBuffer returns the depth attachment. Returns nil if there is no depth
// attachment.
func (o *Object) DepthBuffer() *Renderbuffer {
	return o.depth
}

// Samples returns the number of samples allocated by the driver for the
// colour buffer. If the colour buffer is not a renderbuffer this is the
// requested number of samples.
func (o *Object) Samples() int {
	if rb, ok := o.color.(*Renderbuffer); ok {
		return int(rb.Samples)
	}
	return int(o.samples)
}

// MaxSamples returns the maximum number of samples supported by the driver.
// Zero until the Object has been created.
func (o *Object) MaxSamples() int {
	return int(o.maxSamples)
}

// Width returns the width of the framebuffer.
func (o *Object) Width() int {
	return int(o.width)
}

// Height returns the height of the framebuffer.
func (o *Object) Height() int {
	return int(o.height)
}

// IsCreated returns true if the GL framebuffer exists.
func (o *Object) IsCreated() bool {
	return o.created
}

// Format updates the capabilities with the format of the framebuffer.
func (o *Object) Format(caps *capabilities.Capabilities) {
	caps.RedBits = 8
	caps.GreenBits = 8
	caps.BlueBits = 8
	caps.AlphaBits = 0
	if o.alpha {
		caps.AlphaBits = 8
	}

	caps.DepthBits = 0
	caps.StencilBits = 0
	if o.depth != nil {
		caps.DepthBits = o.depth.Bits
		if o.depth.Kind == DepthStencil {
			caps.DepthBits = 24
			caps.StencilBits = 8
		}
	}

	caps.SetSamples(o.Samples())
	caps.Onscreen = false
	caps.FBO = true
	caps.PBuffer = false
	caps.Bitmap = false
}

// Destroy deletes the framebuffer and all its attachments, including the
// sampling sink. The Object can be recreated by calling Reset().
func (o *Object) Destroy(gl glapi.GL) {
	if !o.created {
		return
	}
	o.Unbind(gl)
	o.detachColorbuffer(gl)
	o.detachRenderbuffer(gl)
	if o.sink != nil {
		o.sink.Destroy(gl)
		o.sink = nil
	}
	gl.DeleteFramebuffer(o.name)
	o.name = 0
	o.created = false
	o.samples = 0
	o.width = 0
	o.height = 0
}
