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

// Package gogl implements glapi.GL with the go-gl OpenGL 3.2 core bindings.
//
// The bindings require a current GL context when New() is called and every
// method must be called on the goroutine (and OS thread) that holds the
// context.
package gogl

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glfbo/glapi"
)

// GL is the go-gl implementation of glapi.GL.
type GL struct{}

// New initialises the go-gl bindings. A GL context must be current.
func New() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gogl: %w", err)
	}
	return &GL{}, nil
}

// Version returns the version string of the current context.
func (g *GL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// GL satisfies the glapi.GL interface.
var _ glapi.GL = (*GL)(nil)

func (g *GL) GenFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return fb
}

func (g *GL) DeleteFramebuffer(fb uint32) {
	gl.DeleteFramebuffers(1, &fb)
}

func (g *GL) BindFramebuffer(target uint32, fb uint32) {
	gl.BindFramebuffer(target, fb)
}

func (g *GL) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (g *GL) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (g *GL) FramebufferRenderbuffer(target uint32, attachment uint32, rbtarget uint32, rb uint32) {
	gl.FramebufferRenderbuffer(target, attachment, rbtarget, rb)
}

func (g *GL) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter uint32) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (g *GL) GenRenderbuffer() uint32 {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return rb
}

func (g *GL) DeleteRenderbuffer(rb uint32) {
	gl.DeleteRenderbuffers(1, &rb)
}

func (g *GL) BindRenderbuffer(target uint32, rb uint32) {
	gl.BindRenderbuffer(target, rb)
}

func (g *GL) RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32) {
	gl.RenderbufferStorage(target, internalFormat, width, height)
}

func (g *GL) RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width int32, height int32) {
	gl.RenderbufferStorageMultisample(target, samples, internalFormat, width, height)
}

func (g *GL) GetRenderbufferParameteri(target uint32, pname uint32) int32 {
	var v int32
	gl.GetRenderbufferParameteriv(target, pname, &v)
	return v
}

func (g *GL) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (g *GL) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (g *GL) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (g *GL) BindTexture(target uint32, tex uint32) {
	gl.BindTexture(target, tex)
}

func (g *GL) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []byte) {
	if len(pixels) > 0 {
		gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, gl.Ptr(pixels))
		return
	}
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, nil)
}

func (g *GL) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (g *GL) GetInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (g *GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	gl.ClearColor(r, gr, b, a)
}

func (g *GL) Clear(mask uint32) {
	gl.Clear(mask)
}

func (g *GL) ReadPixels(x, y, width, height int32, format uint32, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.ReadPixels(x, y, width, height, format, xtype, gl.Ptr(pixels))
}

func (g *GL) GetError() uint32 {
	return gl.GetError()
}
