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

package glfake_test

import (
	"testing"

	"github.com/jetsetilly/glfbo/glapi"
	"github.com/jetsetilly/glfbo/glapi/glfake"
	"github.com/jetsetilly/glfbo/test"
)

func TestBindings(t *testing.T) {
	gl := glfake.New()

	fb := gl.GenFramebuffer()
	gl.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, fb)
	draw, read := gl.Bound()
	test.ExpectEquality(t, draw, fb)
	test.ExpectEquality(t, read, uint32(0))
	test.ExpectEquality(t, gl.GetInteger(glapi.DRAW_FRAMEBUFFER_BINDING), int32(fb))

	// unknown framebuffer
	gl.BindFramebuffer(glapi.FRAMEBUFFER, 1000)
	test.ExpectEquality(t, gl.GetError(), uint32(glapi.INVALID_OPERATION))
	test.ExpectEquality(t, gl.GetError(), uint32(glapi.NO_ERROR))

	gl.DeleteFramebuffer(fb)
	draw, _ = gl.Bound()
	test.ExpectEquality(t, draw, uint32(0))
	test.ExpectEquality(t, gl.Live(), 0)
}

func TestCompleteness(t *testing.T) {
	gl := glfake.New()

	fb := gl.GenFramebuffer()
	gl.BindFramebuffer(glapi.FRAMEBUFFER, fb)
	test.ExpectEquality(t, gl.CheckFramebufferStatus(glapi.FRAMEBUFFER), uint32(glapi.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT))

	color := gl.GenRenderbuffer()
	gl.BindRenderbuffer(glapi.RENDERBUFFER, color)
	gl.RenderbufferStorageMultisample(glapi.RENDERBUFFER, 4, glapi.RGBA8, 10, 10)
	gl.FramebufferRenderbuffer(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.RENDERBUFFER, color)
	test.ExpectEquality(t, gl.CheckFramebufferStatus(glapi.FRAMEBUFFER), uint32(glapi.FRAMEBUFFER_COMPLETE))

	depth := gl.GenRenderbuffer()
	gl.BindRenderbuffer(glapi.RENDERBUFFER, depth)
	gl.RenderbufferStorage(glapi.RENDERBUFFER, glapi.DEPTH_COMPONENT24, 10, 10)
	gl.FramebufferRenderbuffer(glapi.FRAMEBUFFER, glapi.DEPTH_ATTACHMENT, glapi.RENDERBUFFER, depth)
	test.ExpectEquality(t, gl.CheckFramebufferStatus(glapi.FRAMEBUFFER), uint32(glapi.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE))

	gl.RenderbufferStorageMultisample(glapi.RENDERBUFFER, 4, glapi.DEPTH_COMPONENT24, 10, 10)
	test.ExpectEquality(t, gl.CheckFramebufferStatus(glapi.FRAMEBUFFER), uint32(glapi.FRAMEBUFFER_COMPLETE))
	test.ExpectEquality(t, gl.GetRenderbufferParameteri(glapi.RENDERBUFFER, glapi.RENDERBUFFER_SAMPLES), int32(4))

	// more samples than the driver supports
	gl.RenderbufferStorageMultisample(glapi.RENDERBUFFER, 16, glapi.DEPTH_COMPONENT24, 10, 10)
	test.ExpectEquality(t, gl.GetError(), uint32(glapi.INVALID_VALUE))

	gl.Status = glapi.FRAMEBUFFER_UNSUPPORTED
	test.ExpectEquality(t, gl.CheckFramebufferStatus(glapi.FRAMEBUFFER), uint32(glapi.FRAMEBUFFER_UNSUPPORTED))
}

func TestColorFlow(t *testing.T) {
	gl := glfake.New()

	tex := gl.GenTexture()
	gl.BindTexture(glapi.TEXTURE_2D, tex)
	gl.TexImage2D(glapi.TEXTURE_2D, 0, glapi.RGBA8, 4, 4, glapi.RGBA, glapi.UNSIGNED_BYTE, nil)

	fb := gl.GenFramebuffer()
	gl.BindFramebuffer(glapi.FRAMEBUFFER, fb)
	gl.FramebufferTexture2D(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, tex, 0)
	gl.ClearColor(0, 1, 0, 1)
	gl.Clear(glapi.COLOR_BUFFER_BIT)

	// blit to the default framebuffer
	gl.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, 4, 4, 0, 0, 4, 4, glapi.COLOR_BUFFER_BIT, glapi.NEAREST)
	test.ExpectEquality(t, gl.Window.Color, [4]float32{0, 1, 0, 1})

	pixels := make([]byte, 4*4*4)
	gl.ReadPixels(0, 0, 4, 4, glapi.RGBA, glapi.UNSIGNED_BYTE, pixels)
	test.ExpectEquality(t, pixels[0], byte(0))
	test.ExpectEquality(t, pixels[1], byte(255))
	test.ExpectEquality(t, pixels[len(pixels)-1], byte(255))
	test.ExpectEquality(t, gl.GetError(), uint32(glapi.NO_ERROR))
}
