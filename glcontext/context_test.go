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

package glcontext_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glapi"
	"github.com/jetsetilly/glfbo/glapi/glfake"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/test"
)

type native struct {
	current   bool
	destroyed bool
	err       error
}

func (n *native) MakeCurrent() error {
	if n.err != nil {
		return n.err
	}
	n.current = true
	return nil
}

func (n *native) ReleaseCurrent() error {
	n.current = false
	return nil
}

func (n *native) Destroy() error {
	n.destroyed = true
	return nil
}

type drawable struct {
	events     []string
	draw, read uint32
	realizeErr error
}

func (d *drawable) ContextRealized(ctx *glcontext.Context, realized bool) error {
	d.events = append(d.events, fmt.Sprintf("realized %v", realized))
	return d.realizeErr
}

func (d *drawable) ContextMadeCurrent(ctx *glcontext.Context, current bool) error {
	d.events = append(d.events, fmt.Sprintf("current %v", current))
	return nil
}

func (d *drawable) DefaultDrawFramebuffer() uint32 {
	return d.draw
}

func (d *drawable) DefaultReadFramebuffer() uint32 {
	return d.read
}

func (d *drawable) expect(t *testing.T, events ...string) {
	t.Helper()
	test.DemandEquality(t, len(d.events), len(events))
	for i := range events {
		test.ExpectEquality(t, d.events[i], events[i])
	}
	d.events = d.events[:0]
}

func TestLifecycle(t *testing.T) {
	n := &native{}
	d := &drawable{}
	ctx := glcontext.New(n, glfake.New())
	ctx.SetDrawable(d)
	test.ExpectEquality(t, ctx.IsCreated(), false)

	test.DemandSuccess(t, ctx.MakeCurrent())
	d.expect(t, "realized true", "current true")
	test.ExpectEquality(t, ctx.IsCreated(), true)
	test.ExpectEquality(t, ctx.IsCurrent(), true)
	test.ExpectEquality(t, glcontext.Current(), ctx)
	test.ExpectEquality(t, n.current, true)

	// recursion
	test.DemandSuccess(t, ctx.MakeCurrent())
	test.DemandSuccess(t, ctx.Release())
	d.expect(t)
	test.ExpectEquality(t, n.current, true)

	test.DemandSuccess(t, ctx.Release())
	d.expect(t, "current false")
	test.ExpectEquality(t, n.current, false)
	test.ExpectEquality(t, glcontext.Current() == nil, true)
	test.ExpectSuccess(t, curated.Is(ctx.Release(), glcontext.NotCurrent))

	// realized only once
	test.DemandSuccess(t, ctx.MakeCurrent())
	d.expect(t, "current true")
	test.DemandSuccess(t, ctx.Release())
	d.expect(t, "current false")

	test.DemandSuccess(t, ctx.Destroy())
	d.expect(t, "current true", "realized false", "current false")
	test.ExpectEquality(t, n.destroyed, true)
	test.ExpectEquality(t, ctx.IsCreated(), false)
	test.ExpectSuccess(t, curated.Is(ctx.MakeCurrent(), glcontext.Destroyed))
}

func TestFailures(t *testing.T) {
	ctx := glcontext.New(&native{}, glfake.New())
	test.ExpectSuccess(t, curated.Is(ctx.MakeCurrent(), glcontext.NoDrawable))

	n := &native{err: errors.New("no display")}
	ctx = glcontext.New(n, glfake.New())
	ctx.SetDrawable(&drawable{})
	test.ExpectSuccess(t, curated.Is(ctx.MakeCurrent(), glcontext.MakeCurrentFailed))
	test.ExpectEquality(t, ctx.IsCreated(), false)
	test.ExpectEquality(t, glcontext.Current() == nil, true)

	// realized hook failure leaves the context uncreated and not current
	d := &drawable{realizeErr: errors.New("realize")}
	ctx = glcontext.New(&native{}, glfake.New())
	ctx.SetDrawable(d)
	test.ExpectFailure(t, ctx.MakeCurrent())
	test.ExpectEquality(t, ctx.IsCreated(), false)
	test.ExpectEquality(t, ctx.IsCurrent(), false)
	test.ExpectEquality(t, glcontext.Current() == nil, true)

	// an uncreated context can be destroyed without any hooks
	d.events = d.events[:0]
	test.ExpectSuccess(t, ctx.Destroy())
	d.expect(t)
}

func TestSwitch(t *testing.T) {
	da := &drawable{}
	a := glcontext.New(&native{}, glfake.New())
	a.SetDrawable(da)

	db := &drawable{}
	b := glcontext.New(&native{}, glfake.New())
	b.SetDrawable(db)

	test.DemandSuccess(t, a.MakeCurrent())
	test.DemandSuccess(t, a.MakeCurrent())
	test.DemandSuccess(t, b.MakeCurrent())
	da.expect(t, "realized true", "current true", "current false")
	db.expect(t, "realized true", "current true")
	test.ExpectEquality(t, glcontext.Current(), b)
	test.ExpectEquality(t, a.IsCurrent(), false)

	// a is no longer current so it cannot be released
	test.ExpectSuccess(t, curated.Is(a.Release(), glcontext.NotCurrent))
	test.DemandSuccess(t, b.Release())
}

func TestDepth(t *testing.T) {
	a := glcontext.New(&native{}, glfake.New())
	a.SetDrawable(&drawable{})
	b := glcontext.New(&native{}, glfake.New())
	b.SetDrawable(&drawable{})

	test.ExpectEquality(t, a.Depth(), 0)
	test.DemandSuccess(t, a.MakeCurrent())
	test.DemandSuccess(t, a.MakeCurrent())
	test.ExpectEquality(t, a.Depth(), 2)

	// switching contexts discards the nesting of the released context
	test.DemandSuccess(t, b.MakeCurrent())
	test.ExpectEquality(t, a.Depth(), 0)
	test.ExpectEquality(t, b.Depth(), 1)

	// depth is only reported to the owning goroutine
	depth := make(chan int)
	go func() {
		depth <- b.Depth()
	}()
	test.ExpectEquality(t, <-depth, 0)

	test.DemandSuccess(t, b.Release())
	test.ExpectEquality(t, b.Depth(), 0)
}

func TestRedirect(t *testing.T) {
	gl := glfake.New()
	d := &drawable{
		draw: gl.GenFramebuffer(),
		read: gl.GenFramebuffer(),
	}
	other := gl.GenFramebuffer()

	ctx := glcontext.New(&native{}, gl)
	ctx.SetDrawable(d)
	test.ExpectEquality(t, ctx.Raw(), glapi.GL(gl))

	// default framebuffers bound on make current
	test.DemandSuccess(t, ctx.MakeCurrent())
	draw, read := gl.Bound()
	test.ExpectEquality(t, draw, d.draw)
	test.ExpectEquality(t, read, d.read)

	ctx.GL().BindFramebuffer(glapi.FRAMEBUFFER, other)
	draw, read = gl.Bound()
	test.ExpectEquality(t, draw, other)
	test.ExpectEquality(t, read, other)

	ctx.GL().BindFramebuffer(glapi.READ_FRAMEBUFFER, 0)
	draw, read = gl.Bound()
	test.ExpectEquality(t, draw, other)
	test.ExpectEquality(t, read, d.read)

	ctx.GL().BindFramebuffer(glapi.FRAMEBUFFER, 0)
	draw, read = gl.Bound()
	test.ExpectEquality(t, draw, d.draw)
	test.ExpectEquality(t, read, d.read)

	// the raw implementation is not redirected
	ctx.Raw().BindFramebuffer(glapi.FRAMEBUFFER, 0)
	draw, read = gl.Bound()
	test.ExpectEquality(t, draw, uint32(0))
	test.ExpectEquality(t, read, uint32(0))

	test.DemandSuccess(t, ctx.Release())
}

func TestOwnership(t *testing.T) {
	d := &drawable{}
	ctx := glcontext.New(&native{}, glfake.New())
	ctx.SetDrawable(d)
	test.DemandSuccess(t, ctx.MakeCurrent())

	acquired := make(chan error)
	release := make(chan bool)
	done := make(chan error)
	go func() {
		err := ctx.MakeCurrent()
		acquired <- err
		<-release
		done <- ctx.Release()
	}()

	select {
	case <-acquired:
		t.Fatalf("context should not be acquired while owned by another goroutine")
	case <-time.After(10 * time.Millisecond):
	}

	// not current on the other goroutine so this goroutine's state is unaffected
	test.ExpectEquality(t, glcontext.Current(), ctx)
	test.DemandSuccess(t, ctx.Release())

	test.ExpectSuccess(t, <-acquired)
	test.ExpectEquality(t, ctx.IsCurrent(), false)
	release <- true
	test.ExpectSuccess(t, <-done)
}
