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

	"github.com/jetsetilly/glfbo/glapi"
)

// Kind of renderbuffer attachment.
type Kind int

// List of valid Kind values. Color is used for the colour renderbuffer of a
// multisample framebuffer and is not accepted by AttachRenderbuffer().
const (
	Depth Kind = iota
	DepthStencil
	Color
)

func (k Kind) String() string {
	switch k {
	case Depth:
		return "depth"
	case DepthStencil:
		return "depth-stencil"
	case Color:
		return "color"
	}
	return "unknown"
}

// Colorbuffer is the colour attachment of an Object. It is either a *Texture
// or a *Renderbuffer.
type Colorbuffer interface {
	colorbuffer() uint32
	String() string
}

// Texture is a texture colour attachment.
type Texture struct {
	Name           uint32
	Width          int32
	Height         int32
	InternalFormat int32
	DataFormat     uint32
	DataType       uint32
}

func (tex *Texture) colorbuffer() uint32 {
	return tex.Name
}

func (tex *Texture) String() string {
	return fmt.Sprintf("texture %d (%dx%d)", tex.Name, tex.Width, tex.Height)
}

func (tex *Texture) store(gl glapi.GL, width int32, height int32) {
	tex.Width = width
	tex.Height = height
	gl.BindTexture(glapi.TEXTURE_2D, tex.Name)
	gl.TexImage2D(glapi.TEXTURE_2D, 0,
		tex.InternalFormat, tex.Width, tex.Height,
		tex.DataFormat, tex.DataType, nil)
	gl.BindTexture(glapi.TEXTURE_2D, 0)
}

// Renderbuffer is a renderbuffer attachment.
type Renderbuffer struct {
	Name           uint32
	Kind           Kind
	Bits           int
	InternalFormat uint32
	Width          int32
	Height         int32

	// the number of samples allocated by the driver. this can differ from the
	// number requested
	Samples int32
}

func (rb *Renderbuffer) colorbuffer() uint32 {
	return rb.Name
}

func (rb *Renderbuffer) String() string {
	return fmt.Sprintf("%s renderbuffer %d (%dx%d, %d samples)", rb.Kind, rb.Name, rb.Width, rb.Height, rb.Samples)
}

func (rb *Renderbuffer) store(gl glapi.GL, width int32, height int32, samples int32) {
	rb.Width = width
	rb.Height = height
	gl.BindRenderbuffer(glapi.RENDERBUFFER, rb.Name)
	if samples > 0 {
		gl.RenderbufferStorageMultisample(glapi.RENDERBUFFER, samples, rb.InternalFormat, width, height)
	} else {
		gl.RenderbufferStorage(glapi.RENDERBUFFER, rb.InternalFormat, width, height)
	}
	rb.Samples = gl.GetRenderbufferParameteri(glapi.RENDERBUFFER, glapi.RENDERBUFFER_SAMPLES)
	gl.BindRenderbuffer(glapi.RENDERBUFFER, 0)
}

// attachment point for the renderbuffer kind
func (rb *Renderbuffer) attachment() uint32 {
	switch rb.Kind {
	case Depth:
		return glapi.DEPTH_ATTACHMENT
	case DepthStencil:
		return glapi.DEPTH_STENCIL_ATTACHMENT
	}
	return glapi.COLOR_ATTACHMENT0
}

// depthFormat returns the internal format for a depth attachment with the
// number of bits
func depthFormat(kind Kind, bits int) (uint32, bool) {
	switch kind {
	case Depth:
		switch bits {
		case 16:
			return glapi.DEPTH_COMPONENT16, true
		case 24:
			return glapi.DEPTH_COMPONENT24, true
		case 32:
			return glapi.DEPTH_COMPONENT32, true
		}
	case DepthStencil:
		// the only packed format available in core GL 3.2
		if bits > 0 && bits <= 24 {
			return glapi.DEPTH24_STENCIL8, true
		}
	}
	return 0, false
}
