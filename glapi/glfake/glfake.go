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

// Package glfake is an in-memory implementation of glapi.GL. It keeps enough
// state to check the correctness of framebuffer handling: object lifetimes,
// bindings, storage dimensions, sample counts and a single colour value per
// image, which is enough to follow a clear through a blit and into
// ReadPixels().
//
// The limits of the fake driver (MaxSamples and MaxSize) and the way it
// allocates samples (RoundSamples) can be changed to emulate a particular
// driver.
package glfake

import (
	"sync"

	"github.com/jetsetilly/glfbo/glapi"
)

// Image is the storage of a texture, a renderbuffer or of the default
// framebuffer.
type Image struct {
	Width   int32
	Height  int32
	Format  uint32
	Samples int32
	Color   [4]float32
}

// Texture is a texture object.
type Texture struct {
	Image
	Params map[uint32]int32
}

// Renderbuffer is a renderbuffer object.
type Renderbuffer struct {
	Image
}

// Attachment to a framebuffer.
type Attachment struct {
	Renderbuffer bool
	Name         uint32
}

// Framebuffer is a framebuffer object.
type Framebuffer struct {
	Attachments map[uint32]Attachment
}

// Blit records the parameters of a call to BlitFramebuffer().
type Blit struct {
	Read   uint32
	Draw   uint32
	Mask   uint32
	Filter uint32
}

// GL is the fake driver.
type GL struct {
	crit sync.Mutex

	// driver limits
	MaxSamples int32
	MaxSize    int32

	// if not nil, RoundSamples() is called with the requested sample count
	// (already clamped to MaxSamples) and returns the number of samples
	// actually allocated
	RoundSamples func(requested int32) int32

	// if not zero, Status is returned by CheckFramebufferStatus() for any
	// framebuffer other than the default framebuffer
	Status uint32

	// the default framebuffer
	Window Image

	// every blit performed
	Blits []Blit

	// number of calls to Clear()
	Clears int

	nextName uint32

	framebuffers  map[uint32]*Framebuffer
	renderbuffers map[uint32]*Renderbuffer
	textures      map[uint32]*Texture

	drawFramebuffer uint32
	readFramebuffer uint32
	renderbuffer    uint32
	activeUnit      uint32
	unitTextures    map[uint32]uint32

	viewport   [4]int32
	clearColor [4]float32

	err uint32
}

// New returns a fake driver with an 8 sample and 4096 pixel limit.
func New() *GL {
	return &GL{
		MaxSamples:    8,
		MaxSize:       4096,
		nextName:      1,
		framebuffers:  make(map[uint32]*Framebuffer),
		renderbuffers: make(map[uint32]*Renderbuffer),
		textures:      make(map[uint32]*Texture),
		activeUnit:    glapi.TEXTURE0,
		unitTextures:  make(map[uint32]uint32),
	}
}

// GL satisfies the glapi.GL interface.
var _ glapi.GL = (*GL)(nil)

func (g *GL) name() uint32 {
	n := g.nextName
	g.nextName++
	return n
}

func (g *GL) setError(err uint32) {
	// the first error is kept until GetError() is called
	if g.err == glapi.NO_ERROR {
		g.err = err
	}
}

func (g *GL) GenFramebuffer() uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	n := g.name()
	g.framebuffers[n] = &Framebuffer{Attachments: make(map[uint32]Attachment)}
	return n
}

func (g *GL) DeleteFramebuffer(fb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if fb == 0 {
		return
	}
	delete(g.framebuffers, fb)
	if g.drawFramebuffer == fb {
		g.drawFramebuffer = 0
	}
	if g.readFramebuffer == fb {
		g.readFramebuffer = 0
	}
}

func (g *GL) BindFramebuffer(target uint32, fb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if fb != 0 {
		if _, ok := g.framebuffers[fb]; !ok {
			g.setError(glapi.INVALID_OPERATION)
			return
		}
	}
	switch target {
	case glapi.FRAMEBUFFER:
		g.drawFramebuffer = fb
		g.readFramebuffer = fb
	case glapi.DRAW_FRAMEBUFFER:
		g.drawFramebuffer = fb
	case glapi.READ_FRAMEBUFFER:
		g.readFramebuffer = fb
	default:
		g.setError(glapi.INVALID_ENUM)
	}
}

// bound returns the framebuffer bound to the target. returns nil for the
// default framebuffer
func (g *GL) bound(target uint32) (uint32, *Framebuffer) {
	n := g.drawFramebuffer
	if target == glapi.READ_FRAMEBUFFER {
		n = g.readFramebuffer
	}
	return n, g.framebuffers[n]
}

// image returns the image attached to a framebuffer, or the Window image for
// the default framebuffer
func (g *GL) image(n uint32, fb *Framebuffer, attachment uint32) *Image {
	if n == 0 {
		return &g.Window
	}
	if fb == nil {
		return nil
	}
	a, ok := fb.Attachments[attachment]
	if !ok {
		return nil
	}
	if a.Renderbuffer {
		if rb, ok := g.renderbuffers[a.Name]; ok {
			return &rb.Image
		}
		return nil
	}
	if tex, ok := g.textures[a.Name]; ok {
		return &tex.Image
	}
	return nil
}

func (g *GL) CheckFramebufferStatus(target uint32) uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()

	n, fb := g.bound(target)
	if n == 0 {
		return glapi.FRAMEBUFFER_COMPLETE
	}
	if g.Status != 0 {
		return g.Status
	}
	if fb == nil || len(fb.Attachments) == 0 {
		return glapi.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}

	var width, height, samples int32
	first := true
	for attachment := range fb.Attachments {
		img := g.image(n, fb, attachment)
		if img == nil || img.Width == 0 || img.Height == 0 {
			return glapi.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if first {
			width, height, samples = img.Width, img.Height, img.Samples
			first = false
			continue
		}
		if img.Samples != samples {
			return glapi.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
		}
		if img.Width != width || img.Height != height {
			return glapi.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
	}

	return glapi.FRAMEBUFFER_COMPLETE
}

func (g *GL) attach(target uint32, attachment uint32, a Attachment) {
	n, fb := g.bound(target)
	if n == 0 || fb == nil {
		g.setError(glapi.INVALID_OPERATION)
		return
	}

	if a.Name == 0 {
		delete(fb.Attachments, attachment)
		if attachment == glapi.DEPTH_STENCIL_ATTACHMENT {
			delete(fb.Attachments, glapi.DEPTH_ATTACHMENT)
			delete(fb.Attachments, glapi.STENCIL_ATTACHMENT)
		}
		return
	}
	fb.Attachments[attachment] = a
}

func (g *GL) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if texture != 0 {
		if _, ok := g.textures[texture]; !ok {
			g.setError(glapi.INVALID_OPERATION)
			return
		}
	}
	g.attach(target, attachment, Attachment{Name: texture})
}

func (g *GL) FramebufferRenderbuffer(target uint32, attachment uint32, rbtarget uint32, rb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if rb != 0 {
		if _, ok := g.renderbuffers[rb]; !ok {
			g.setError(glapi.INVALID_OPERATION)
			return
		}
	}
	g.attach(target, attachment, Attachment{Renderbuffer: true, Name: rb})
}

func (g *GL) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()

	g.Blits = append(g.Blits, Blit{
		Read:   g.readFramebuffer,
		Draw:   g.drawFramebuffer,
		Mask:   mask,
		Filter: filter,
	})

	if mask&glapi.COLOR_BUFFER_BIT == glapi.COLOR_BUFFER_BIT {
		rn, rfb := g.bound(glapi.READ_FRAMEBUFFER)
		dn, dfb := g.bound(glapi.DRAW_FRAMEBUFFER)
		src := g.image(rn, rfb, glapi.COLOR_ATTACHMENT0)
		dst := g.image(dn, dfb, glapi.COLOR_ATTACHMENT0)
		if src == nil || dst == nil {
			g.setError(glapi.INVALID_FRAMEBUFFER_OPERATION)
			return
		}
		dst.Color = src.Color
	}
}

func (g *GL) GenRenderbuffer() uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	n := g.name()
	g.renderbuffers[n] = &Renderbuffer{}
	return n
}

func (g *GL) DeleteRenderbuffer(rb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	delete(g.renderbuffers, rb)
	if g.renderbuffer == rb {
		g.renderbuffer = 0
	}
}

func (g *GL) BindRenderbuffer(target uint32, rb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if rb != 0 {
		if _, ok := g.renderbuffers[rb]; !ok {
			g.setError(glapi.INVALID_OPERATION)
			return
		}
	}
	g.renderbuffer = rb
}

func (g *GL) storage(samples int32, internalFormat uint32, width int32, height int32) {
	rb, ok := g.renderbuffers[g.renderbuffer]
	if !ok {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	if width > g.MaxSize || height > g.MaxSize || width < 0 || height < 0 {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	if samples > g.MaxSamples {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	if samples > 0 && g.RoundSamples != nil {
		samples = g.RoundSamples(samples)
	}
	rb.Image = Image{
		Width:   width,
		Height:  height,
		Format:  internalFormat,
		Samples: samples,
	}
}

func (g *GL) RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.storage(0, internalFormat, width, height)
}

func (g *GL) RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width int32, height int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.storage(samples, internalFormat, width, height)
}

func (g *GL) GetRenderbufferParameteri(target uint32, pname uint32) int32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	rb, ok := g.renderbuffers[g.renderbuffer]
	if !ok {
		g.setError(glapi.INVALID_OPERATION)
		return 0
	}
	switch pname {
	case glapi.RENDERBUFFER_SAMPLES:
		return rb.Samples
	case glapi.RENDERBUFFER_WIDTH:
		return rb.Width
	case glapi.RENDERBUFFER_HEIGHT:
		return rb.Height
	}
	g.setError(glapi.INVALID_ENUM)
	return 0
}

func (g *GL) GenTexture() uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	n := g.name()
	g.textures[n] = &Texture{Params: make(map[uint32]int32)}
	return n
}

func (g *GL) DeleteTexture(tex uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	delete(g.textures, tex)
	for unit, t := range g.unitTextures {
		if t == tex {
			delete(g.unitTextures, unit)
		}
	}
}

func (g *GL) ActiveTexture(unit uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.activeUnit = unit
}

func (g *GL) BindTexture(target uint32, tex uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if tex != 0 {
		if _, ok := g.textures[tex]; !ok {
			g.setError(glapi.INVALID_OPERATION)
			return
		}
	}
	g.unitTextures[g.activeUnit] = tex
}

func (g *GL) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []byte) {
	g.crit.Lock()
	defer g.crit.Unlock()
	tex, ok := g.textures[g.unitTextures[g.activeUnit]]
	if !ok {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	if width > g.MaxSize || height > g.MaxSize || width < 0 || height < 0 {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	tex.Image = Image{
		Width:  width,
		Height: height,
		Format: uint32(internalFormat),
	}
	if len(pixels) >= 4 {
		for i := range tex.Color {
			tex.Color[i] = float32(pixels[i]) / 255
		}
	}
}

func (g *GL) TexParameteri(target uint32, pname uint32, param int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	tex, ok := g.textures[g.unitTextures[g.activeUnit]]
	if !ok {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	tex.Params[pname] = param
}

func (g *GL) GetInteger(pname uint32) int32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	switch pname {
	case glapi.MAX_SAMPLES:
		return g.MaxSamples
	case glapi.MAX_RENDERBUFFER_SIZE:
		return g.MaxSize
	case glapi.DRAW_FRAMEBUFFER_BINDING:
		return int32(g.drawFramebuffer)
	case glapi.READ_FRAMEBUFFER_BINDING:
		return int32(g.readFramebuffer)
	}
	g.setError(glapi.INVALID_ENUM)
	return 0
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.viewport = [4]int32{x, y, width, height}
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.clearColor = [4]float32{r, gr, b, a}
}

func (g *GL) Clear(mask uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.Clears++
	if mask&glapi.COLOR_BUFFER_BIT == glapi.COLOR_BUFFER_BIT {
		n, fb := g.bound(glapi.DRAW_FRAMEBUFFER)
		if img := g.image(n, fb, glapi.COLOR_ATTACHMENT0); img != nil {
			img.Color = g.clearColor
		}
	}
}

// ReadPixels fills pixels with the colour of the read framebuffer. Only the
// RGBA, UNSIGNED_BYTE combination is supported.
func (g *GL) ReadPixels(x, y, width, height int32, format uint32, xtype uint32, pixels []byte) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if format != glapi.RGBA || xtype != glapi.UNSIGNED_BYTE {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	n, fb := g.bound(glapi.READ_FRAMEBUFFER)
	img := g.image(n, fb, glapi.COLOR_ATTACHMENT0)
	if img == nil {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	if img.Samples > 0 {
		// multisample images must be resolved before reading
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	var px [4]byte
	for i := range px {
		px[i] = byte(img.Color[i]*255 + 0.5)
	}
	for i := 0; i+3 < len(pixels) && i < int(width*height*4); i += 4 {
		copy(pixels[i:], px[:])
	}
}

func (g *GL) GetError() uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	err := g.err
	g.err = glapi.NO_ERROR
	return err
}
