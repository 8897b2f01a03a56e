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

// Package fbobject manages a single GL framebuffer object and its
// attachments.
//
// An Object has one colour attachment and an optional depth (or combined
// depth and stencil) attachment. For single sample framebuffers the colour
// attachment is normally a texture. For multisample framebuffers the colour
// attachment is a multisample renderbuffer and the Object maintains a second,
// single sample, Object called the sampling sink. Calling Sync() resolves the
// multisample colour buffer into the texture of the sampling sink, at which
// point the texture can be sampled.
//
// GL objects are created on the first call to Reset(). All functions that
// take a glapi.GL argument require the GL context to be current.
package fbobject
