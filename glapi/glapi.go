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

// Package glapi is the set of OpenGL entry points used by the framebuffer
// packages. Having the entry points behind an interface means that the
// framebuffer logic can be driven by a real driver (see package gogl) or by
// the in-memory implementation in package glfake.
//
// Object names are uint32 values, as they are in the C API. The zero name
// always refers to the default object for the target.
package glapi

// GL is the subset of the OpenGL 3.2 API required by this module.
type GL interface {
	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	BindFramebuffer(target uint32, fb uint32)
	CheckFramebufferStatus(target uint32) uint32
	FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32)
	FramebufferRenderbuffer(target uint32, attachment uint32, rbtarget uint32, rb uint32)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter uint32)

	GenRenderbuffer() uint32
	DeleteRenderbuffer(rb uint32)
	BindRenderbuffer(target uint32, rb uint32)
	RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32)
	RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width int32, height int32)
	GetRenderbufferParameteri(target uint32, pname uint32) int32

	GenTexture() uint32
	DeleteTexture(tex uint32)
	ActiveTexture(unit uint32)
	BindTexture(target uint32, tex uint32)
	TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []byte)
	TexParameteri(target uint32, pname uint32, param int32)

	GetInteger(pname uint32) int32
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	ReadPixels(x, y, width, height int32, format uint32, xtype uint32, pixels []byte)
	GetError() uint32
}
