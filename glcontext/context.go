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

import (
	"sync"

	"github.com/jetsetilly/glfbo/assert"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glapi"
)

// Error patterns.
const (
	NotCurrent        = "glcontext: context is not current on this goroutine"
	NoDrawable        = "glcontext: context has no drawable"
	Destroyed         = "glcontext: context has been destroyed"
	MakeCurrentFailed = "glcontext: make current failed: %v"
	ReleaseFailed     = "glcontext: release failed: %v"
	DestroyFailed     = "glcontext: destroy failed: %v"

	// the drawable's release hook and the native release both failed
	HookAndReleaseFailed = "glcontext: %v: release failed: %v"
)

// Native is the platform GL context.
type Native interface {
	MakeCurrent() error
	ReleaseCurrent() error
	Destroy() error
}

// Drawable is the target of a Context. It is informed of lifecycle events and
// provides the framebuffers that are bound when the default framebuffer is
// requested.
type Drawable interface {
	ContextRealized(ctx *Context, realized bool) error
	ContextMadeCurrent(ctx *Context, current bool) error
	DefaultDrawFramebuffer() uint32
	DefaultReadFramebuffer() uint32
}

// Context is a GL context and its lifecycle state.
type Context struct {
	native Native
	raw    glapi.GL
	gl     *redirect

	crit sync.Mutex
	cond *sync.Cond

	// goroutine that owns the context and the recursion depth of MakeCurrent()
	owner uint64
	depth int

	created   bool
	destroyed bool

	drawable Drawable
}

// New is the preferred method of initialisation for the Context type. The
// GL implementation should be usable whenever the native context is current.
func New(native Native, gl glapi.GL) *Context {
	ctx := &Context{
		native: native,
		raw:    gl,
	}
	ctx.cond = sync.NewCond(&ctx.crit)
	ctx.gl = &redirect{GL: gl, ctx: ctx}
	return ctx
}

// SetDrawable sets the drawable that the context renders to.
func (ctx *Context) SetDrawable(d Drawable) {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	ctx.drawable = d
}

// Drawable returns the drawable that the context renders to.
func (ctx *Context) Drawable() Drawable {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.drawable
}

// GL returns the GL implementation for the context. Binding framebuffer zero
// with the returned implementation binds the default framebuffers of the
// drawable.
func (ctx *Context) GL() glapi.GL {
	return ctx.gl
}

// Native returns the platform GL context.
func (ctx *Context) Native() Native {
	return ctx.native
}

// Raw returns the GL implementation without framebuffer redirection.
func (ctx *Context) Raw() glapi.GL {
	return ctx.raw
}

// IsCreated returns true if the context has been made current at least once
// and has not been destroyed.
func (ctx *Context) IsCreated() bool {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.created
}

// IsCurrent returns true if the context is current on the calling goroutine.
func (ctx *Context) IsCurrent() bool {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	return ctx.owner == assert.GetGoRoutineID()
}

// Depth returns the number of unreleased calls to MakeCurrent() made by the
// calling goroutine. Zero if the context is not current on the goroutine.
func (ctx *Context) Depth() int {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	if ctx.owner != assert.GetGoRoutineID() {
		return 0
	}
	return ctx.depth
}

// MakeCurrent makes the context current on the calling goroutine.
func (ctx *Context) MakeCurrent() error {
	id := assert.GetGoRoutineID()

	ctx.crit.Lock()
	if ctx.destroyed {
		ctx.crit.Unlock()
		return curated.Errorf(Destroyed)
	}
	if ctx.drawable == nil {
		ctx.crit.Unlock()
		return curated.Errorf(NoDrawable)
	}
	if ctx.owner == id {
		ctx.depth++
		ctx.crit.Unlock()
		return nil
	}
	ctx.crit.Unlock()

	// only one context can be current on a goroutine
	if prev := Current(); prev != nil && prev != ctx {
		if err := prev.release(id); err != nil {
			return err
		}
	}

	ctx.crit.Lock()
	for ctx.owner != 0 && !ctx.destroyed {
		ctx.cond.Wait()
	}
	if ctx.destroyed {
		ctx.crit.Unlock()
		return curated.Errorf(Destroyed)
	}
	ctx.owner = id
	ctx.depth = 1
	realize := !ctx.created
	ctx.created = true
	d := ctx.drawable
	ctx.crit.Unlock()

	if err := ctx.native.MakeCurrent(); err != nil {
		ctx.disown(id, realize)
		return curated.Errorf(MakeCurrentFailed, err)
	}
	setCurrent(id, ctx)

	if realize {
		if err := d.ContextRealized(ctx, true); err != nil {
			_ = ctx.native.ReleaseCurrent()
			clearCurrent(id)
			ctx.disown(id, true)
			return err
		}
	}

	ctx.raw.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, d.DefaultDrawFramebuffer())
	ctx.raw.BindFramebuffer(glapi.READ_FRAMEBUFFER, d.DefaultReadFramebuffer())

	if err := d.ContextMadeCurrent(ctx, true); err != nil {
		_ = ctx.native.ReleaseCurrent()
		clearCurrent(id)
		ctx.disown(id, false)
		return err
	}

	return nil
}

// disown gives up ownership after a failed make-current. if uncreate is true
// the context will be realized again on the next make-current
func (ctx *Context) disown(id uint64, uncreate bool) {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	if ctx.owner == id {
		ctx.owner = 0
		ctx.depth = 0
	}
	if uncreate {
		ctx.created = false
	}
	ctx.cond.Broadcast()
}

// Release undoes one call to MakeCurrent(). The context is released when the
// number of calls to Release() matches the number of calls to MakeCurrent().
func (ctx *Context) Release() error {
	id := assert.GetGoRoutineID()

	ctx.crit.Lock()
	if ctx.owner != id {
		ctx.crit.Unlock()
		return curated.Errorf(NotCurrent)
	}
	ctx.depth--
	if ctx.depth > 0 {
		ctx.crit.Unlock()
		return nil
	}
	ctx.crit.Unlock()

	return ctx.release(id)
}

// release the context regardless of recursion depth.
func (ctx *Context) release(id uint64) error {
	ctx.crit.Lock()
	if ctx.owner != id {
		ctx.crit.Unlock()
		return curated.Errorf(NotCurrent)
	}
	d := ctx.drawable
	ctx.crit.Unlock()

	var hookErr error
	if d != nil {
		hookErr = d.ContextMadeCurrent(ctx, false)
	}

	nativeErr := ctx.native.ReleaseCurrent()
	clearCurrent(id)

	ctx.crit.Lock()
	ctx.owner = 0
	ctx.depth = 0
	ctx.cond.Broadcast()
	ctx.crit.Unlock()

	if hookErr != nil {
		if nativeErr != nil {
			return curated.Errorf(HookAndReleaseFailed, hookErr, nativeErr)
		}
		return hookErr
	}
	if nativeErr != nil {
		return curated.Errorf(ReleaseFailed, nativeErr)
	}
	return nil
}

// Destroy the context. If the context has been created, the drawable is told
// that the context is no longer realized.
func (ctx *Context) Destroy() error {
	if ctx.IsCreated() {
		if err := ctx.MakeCurrent(); err != nil {
			return err
		}

		var err error
		if d := ctx.Drawable(); d != nil {
			err = d.ContextRealized(ctx, false)
		}

		ctx.crit.Lock()
		ctx.created = false
		ctx.crit.Unlock()

		// release regardless of recursion depth
		if rerr := ctx.release(assert.GetGoRoutineID()); rerr != nil && err == nil {
			err = rerr
		}
		if err != nil {
			return err
		}
	}

	ctx.crit.Lock()
	ctx.destroyed = true
	ctx.cond.Broadcast()
	ctx.crit.Unlock()

	if err := ctx.native.Destroy(); err != nil {
		return curated.Errorf(DestroyFailed, err)
	}
	return nil
}
