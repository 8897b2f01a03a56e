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
	"fmt"
	"runtime"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glapi/gogl"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Parent is a hidden SDL window used to create GL contexts.
type Parent struct {
	window   *sdl.Window
	realized bool
}

// NewParent is the preferred method of initialisation for the Parent type.
func NewParent(width int, height int) (*Parent, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	window, err := sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &Parent{
		window: window,
	}, nil
}

// Window returns the SDL window.
func (p *Parent) Window() *sdl.Window {
	return p.window
}

// CreateContext implements the drawable.Parent interface. If share is not
// nil it must be current on the calling goroutine and the new context will
// share its objects.
func (p *Parent) CreateContext(share *glcontext.Context) (*glcontext.Context, error) {
	prev := glcontext.Current()

	if share != nil {
		if !share.IsCurrent() {
			return nil, curated.Errorf(ShareNotCurrent)
		}
		err := sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 1)
		if err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
		defer func() {
			_ = sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 0)
		}()
	}

	// SDL makes a new context current
	glc, err := p.window.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	gl, err := gogl.New()
	if err != nil {
		sdl.GLDeleteContext(glc)
		return nil, err
	}
	logger.Logf(logger.Allow, "sdl", "created context: GL %s", gl.Version())

	n := &native{
		window: p.window,
		glc:    glc,
	}

	// the context is current natively but glcontext does not know about it
	if prev != nil {
		err = prev.Native().MakeCurrent()
	} else {
		err = p.window.GLMakeCurrent(nil)
	}
	if err != nil {
		sdl.GLDeleteContext(glc)
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return glcontext.New(n, gl), nil
}

// SetRealized implements the drawable.Parent interface. The window is hidden
// when unrealized.
func (p *Parent) SetRealized(realized bool) error {
	p.realized = realized
	if !realized {
		p.window.Hide()
	}
	return nil
}

// IsRealized returns the value of the most recent call to SetRealized().
func (p *Parent) IsRealized() bool {
	return p.realized
}

// Destroy the window and quit SDL. All contexts must have been destroyed.
func (p *Parent) Destroy() error {
	err := p.window.Destroy()
	sdl.Quit()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// native implements glcontext.Native for an SDL GL context.
type native struct {
	window *sdl.Window
	glc    sdl.GLContext
}

func (n *native) MakeCurrent() error {
	if err := n.window.GLMakeCurrent(n.glc); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (n *native) ReleaseCurrent() error {
	if err := n.window.GLMakeCurrent(nil); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (n *native) Destroy() error {
	sdl.GLDeleteContext(n.glc)
	return nil
}
