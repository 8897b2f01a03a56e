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

package main

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/glapi"
	"github.com/jetsetilly/glfbo/glapi/glfake"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/test"
)

func TestSnapshot(t *testing.T) {
	gl := glfake.New()

	tex := gl.GenTexture()
	gl.BindTexture(glapi.TEXTURE_2D, tex)
	gl.TexImage2D(glapi.TEXTURE_2D, 0, glapi.RGBA8, 8, 4, glapi.RGBA, glapi.UNSIGNED_BYTE, nil)

	fb := gl.GenFramebuffer()
	gl.BindFramebuffer(glapi.FRAMEBUFFER, fb)
	gl.FramebufferTexture2D(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, tex, 0)
	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(glapi.COLOR_BUFFER_BIT)
	gl.BindFramebuffer(glapi.FRAMEBUFFER, 0)

	img, err := snapshot(gl, fb, 8, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectEquality(t, img.Bounds().Dy(), 4)
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(7, 3), color.RGBA{R: 255, A: 255})

	_, read := gl.Bound()
	test.ExpectEquality(t, read, fb)

	var b bytes.Buffer
	test.DemandSuccess(t, encodePNG(&b, img))
	dec, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.Bounds(), img.Bounds())
}

func TestSnapshotError(t *testing.T) {
	gl := glfake.New()

	// multisample framebuffers cannot be read
	rb := gl.GenRenderbuffer()
	gl.BindRenderbuffer(glapi.RENDERBUFFER, rb)
	gl.RenderbufferStorageMultisample(glapi.RENDERBUFFER, 4, glapi.RGBA8, 8, 4)

	fb := gl.GenFramebuffer()
	gl.BindFramebuffer(glapi.FRAMEBUFFER, fb)
	gl.FramebufferRenderbuffer(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.RENDERBUFFER, rb)

	_, err := snapshot(gl, fb, 8, 4)
	test.ExpectFailure(t, err)
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("320x200")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	_, _, err = parseSize("320")
	test.ExpectFailure(t, err)
	_, _, err = parseSize("-1x200")
	test.ExpectFailure(t, err)
	_, _, err = parseSize("axb")
	test.ExpectFailure(t, err)
}

type native struct {
	releaseErr error
}

func (n *native) MakeCurrent() error {
	return nil
}

func (n *native) ReleaseCurrent() error {
	return n.releaseErr
}

func (n *native) Destroy() error {
	return nil
}

type drawable struct{}

func (d drawable) ContextRealized(ctx *glcontext.Context, realized bool) error {
	return nil
}

func (d drawable) ContextMadeCurrent(ctx *glcontext.Context, current bool) error {
	return nil
}

func (d drawable) DefaultDrawFramebuffer() uint32 {
	return 0
}

func (d drawable) DefaultReadFramebuffer() uint32 {
	return 0
}

func TestReleaseContext(t *testing.T) {
	n := &native{}
	ctx := glcontext.New(n, glfake.New())
	ctx.SetDrawable(drawable{})

	// a successful release leaves err untouched
	var err error
	test.DemandSuccess(t, ctx.MakeCurrent())
	releaseContext(ctx, &err)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ctx.IsCurrent(), false)

	// a failed release is reported
	n.releaseErr = errors.New("lost context")
	test.DemandSuccess(t, ctx.MakeCurrent())
	releaseContext(ctx, &err)
	test.ExpectSuccess(t, curated.Is(err, glcontext.ReleaseFailed))

	// but does not replace an earlier error
	frameErr := errors.New("frame failed")
	err = frameErr
	test.DemandSuccess(t, ctx.MakeCurrent())
	releaseContext(ctx, &err)
	test.ExpectEquality(t, err, frameErr)
	test.ExpectEquality(t, ctx.IsCurrent(), false)
}
