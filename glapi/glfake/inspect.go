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

package glfake

// Inspection functions for use by tests.

// Live returns the number of framebuffer, renderbuffer and texture objects
// that have not been deleted.
func (g *GL) Live() int {
	g.crit.Lock()
	defer g.crit.Unlock()
	return len(g.framebuffers) + len(g.renderbuffers) + len(g.textures)
}

// IsFramebuffer returns true if the name refers to a framebuffer that has not
// been deleted.
func (g *GL) IsFramebuffer(n uint32) bool {
	g.crit.Lock()
	defer g.crit.Unlock()
	_, ok := g.framebuffers[n]
	return ok
}

// IsRenderbuffer returns true if the name refers to a renderbuffer that has
// not been deleted.
func (g *GL) IsRenderbuffer(n uint32) bool {
	g.crit.Lock()
	defer g.crit.Unlock()
	_, ok := g.renderbuffers[n]
	return ok
}

// IsTexture returns true if the name refers to a texture that has not been
// deleted.
func (g *GL) IsTexture(n uint32) bool {
	g.crit.Lock()
	defer g.crit.Unlock()
	_, ok := g.textures[n]
	return ok
}

// Framebuffer returns a copy of the named framebuffer.
func (g *GL) Framebuffer(n uint32) (Framebuffer, bool) {
	g.crit.Lock()
	defer g.crit.Unlock()
	fb, ok := g.framebuffers[n]
	if !ok {
		return Framebuffer{}, false
	}
	c := Framebuffer{Attachments: make(map[uint32]Attachment)}
	for k, v := range fb.Attachments {
		c.Attachments[k] = v
	}
	return c, true
}

// Renderbuffer returns the storage of the named renderbuffer.
func (g *GL) Renderbuffer(n uint32) (Image, bool) {
	g.crit.Lock()
	defer g.crit.Unlock()
	rb, ok := g.renderbuffers[n]
	if !ok {
		return Image{}, false
	}
	return rb.Image, true
}

// Texture returns the storage of the named texture.
func (g *GL) Texture(n uint32) (Image, bool) {
	g.crit.Lock()
	defer g.crit.Unlock()
	tex, ok := g.textures[n]
	if !ok {
		return Image{}, false
	}
	return tex.Image, true
}

// TextureParam returns the value of a texture parameter.
func (g *GL) TextureParam(n uint32, pname uint32) (int32, bool) {
	g.crit.Lock()
	defer g.crit.Unlock()
	tex, ok := g.textures[n]
	if !ok {
		return 0, false
	}
	v, ok := tex.Params[pname]
	return v, ok
}

// Bound returns the current draw and read framebuffers.
func (g *GL) Bound() (draw uint32, read uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.drawFramebuffer, g.readFramebuffer
}

// ActiveUnit returns the active texture unit.
func (g *GL) ActiveUnit() uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.activeUnit
}

// BoundTexture returns the texture bound to the texture unit.
func (g *GL) BoundTexture(unit uint32) uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.unitTextures[unit]
}

// CurrentViewport returns the current viewport.
func (g *GL) CurrentViewport() [4]int32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.viewport
}

// ResetBlits forgets the record of previous blits.
func (g *GL) ResetBlits() {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.Blits = g.Blits[:0]
}

// BlitCount returns the number of blits performed.
func (g *GL) BlitCount() int {
	g.crit.Lock()
	defer g.crit.Unlock()
	return len(g.Blits)
}
