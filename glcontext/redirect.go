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

package glcontext

import "github.com/jetsetilly/glfbo/glapi"

// redirect binds the default framebuffers of the drawable when framebuffer
// zero is bound.
type redirect struct {
	glapi.GL
	ctx *Context
}

func (r *redirect) BindFramebuffer(target uint32, fb uint32) {
	if fb != 0 {
		r.GL.BindFramebuffer(target, fb)
		return
	}

	d := r.ctx.Drawable()
	if d == nil {
		r.GL.BindFramebuffer(target, 0)
		return
	}

	switch target {
	case glapi.FRAMEBUFFER:
		r.GL.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, d.DefaultDrawFramebuffer())
		r.GL.BindFramebuffer(glapi.READ_FRAMEBUFFER, d.DefaultReadFramebuffer())
	case glapi.DRAW_FRAMEBUFFER:
		r.GL.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, d.DefaultDrawFramebuffer())
	case glapi.READ_FRAMEBUFFER:
		r.GL.BindFramebuffer(glapi.READ_FRAMEBUFFER, d.DefaultReadFramebuffer())
	default:
		r.GL.BindFramebuffer(target, 0)
	}
}
