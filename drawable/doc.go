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

// Package drawable implements an offscreen GL drawable backed by framebuffer
// objects.
//
// The drawable replaces the default framebuffer of a context with one or two
// framebuffer objects. For single sample rendering with double buffering two
// framebuffers are used and the roles of back buffer (the buffer being drawn
// to) and front buffer (the buffer being presented) are exchanged on every
// swap. For multisample rendering a single framebuffer is used and the swap
// resolves the multisample colour buffer into a texture.
//
// The drawable is driven by a glcontext.Context. The framebuffers are created
// when the context is realized and the back buffer is bound whenever the
// context is made current. Releasing the context, or calling SwapBuffers(),
// performs the swap.
//
// Changes to the size or to the number of samples are applied immediately to
// every framebuffer except the front buffer, which may still be waiting to be
// presented. The front buffer is reset on the next swap.
//
// The drawable has no internal locking. It must be used from the goroutine
// that holds its context, with the exception of Resize(), which takes the
// surface lock and saves and restores the context current on the calling
// goroutine.
package drawable
