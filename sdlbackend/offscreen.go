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

package sdlbackend

import (
	"github.com/jetsetilly/glfbo/capabilities"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/drawable"
	"github.com/jetsetilly/glfbo/glapi"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/surface"
)

// Error patterns.
const (
	ShareNotCurrent = "sdl: share context is not current"
	NotFBO          = "sdl: offscreen capabilities are not an FBO: %s"
)

// NewOffscreen creates an offscreen drawable and a context for it. The
// context has not been made current so the framebuffers do not yet exist.
func NewOffscreen(parent *Parent, requested capabilities.Capabilities, width int, height int, cfg drawable.Config) (*drawable.Drawable, *glcontext.Context, error) {
	// framebuffer objects are always available with GL 3.2. pbuffers are not
	// supported by SDL
	chosen := capabilities.FixOffscreen(requested, true, false)
	if !chosen.FBO {
		return nil, nil, curated.Errorf(NotFBO, chosen)
	}

	surf := surface.NewProxy(surface.NewMutableSize(width, height), chosen)
	d, err := drawable.New(parent, surf, chosen, cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, err := d.CreateContext(nil)
	if err != nil {
		return nil, nil, err
	}

	return d, ctx, nil
}

// Presenter returns a present callback for the drawable. The front buffer is
// copied to the parent window and the window is swapped. The window is shown
// on the first call.
func Presenter(parent *Parent, d *drawable.Drawable, ctx *glcontext.Context) drawable.PresentFunc {
	return func(doubleBuffered bool) error {
		if !ctx.IsCurrent() {
			return curated.Errorf(glcontext.NotCurrent)
		}

		parent.window.Show()
		ww, wh := parent.window.GetSize()

		gl := ctx.Raw()
		gl.BindFramebuffer(glapi.READ_FRAMEBUFFER, d.DefaultReadFramebuffer())
		gl.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, 0)
		gl.BlitFramebuffer(0, 0, int32(d.Width()), int32(d.Height()), 0, 0, ww, wh,
			glapi.COLOR_BUFFER_BIT, glapi.LINEAR)

		if doubleBuffered {
			parent.window.GLSwap()
		}

		// restore the drawable's default framebuffers
		ctx.GL().BindFramebuffer(glapi.FRAMEBUFFER, 0)

		return nil
	}
}
