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

package drawable

import (
	"testing"

	"github.com/jetsetilly/glfbo/capabilities"
	"github.com/jetsetilly/glfbo/glapi/glfake"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/surface"
	"github.com/jetsetilly/glfbo/test"
)

type native struct {
	err error
}

func (n *native) MakeCurrent() error {
	return n.err
}

func (n *native) ReleaseCurrent() error {
	return nil
}

func (n *native) Destroy() error {
	return nil
}

type parent struct {
	gl       *glfake.GL
	native   *native
	realized bool
}

func (p *parent) CreateContext(share *glcontext.Context) (*glcontext.Context, error) {
	return glcontext.New(p.native, p.gl), nil
}

func (p *parent) SetRealized(realized bool) error {
	p.realized = realized
	return nil
}

func offscreenCaps(samples int, doubleBuffered bool) capabilities.Capabilities {
	caps := capabilities.FixOffscreen(capabilities.Default(), true, false)
	caps.Onscreen = false
	caps.FBO = true
	caps.AlphaBits = 8
	caps.DoubleBuffered = doubleBuffered
	caps.SetSamples(samples)
	return caps
}

type fixture struct {
	gl     *glfake.GL
	native *native
	parent *parent
	d      *Drawable
	ctx    *glcontext.Context
}

// newFixture returns a drawable with a context that has not yet been made
// current.
func newFixture(t *testing.T, caps capabilities.Capabilities, upstream surface.UpstreamHook) *fixture {
	t.Helper()
	f := &fixture{
		gl:     glfake.New(),
		native: &native{},
	}
	f.parent = &parent{gl: f.gl, native: f.native}

	var err error
	f.d, err = New(f.parent, surface.NewProxy(upstream, caps), caps, Config{Debug: true})
	test.DemandSuccess(t, err)

	f.ctx, err = f.d.CreateContext(nil)
	test.DemandSuccess(t, err)

	return f
}

// current returns a drawable with a realized context that is current on the
// test goroutine. the context is destroyed when the test completes
func current(t *testing.T, samples int, doubleBuffered bool) *fixture {
	t.Helper()
	f := newFixture(t, offscreenCaps(samples, doubleBuffered), surface.NewMutableSize(64, 32))
	test.DemandSuccess(t, f.ctx.MakeCurrent())
	t.Cleanup(func() {
		f.native.err = nil
		_ = f.ctx.Destroy()
	})
	return f
}

// rebind releases and remakes the context so that the back buffer is bound
func (f *fixture) rebind(t *testing.T) {
	t.Helper()
	test.DemandSuccess(t, f.ctx.Release())
	test.DemandSuccess(t, f.ctx.MakeCurrent())
}
