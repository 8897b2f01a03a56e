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

// Package glcontext manages the lifecycle of a GL context and the drawable it
// renders to.
//
// A Context is current on at most one goroutine at a time. MakeCurrent() is
// recursive for the goroutine that owns the context and blocks if another
// goroutine owns it. Making a context current on a goroutine releases any
// other context that is current on that goroutine, however deeply nested.
// Callers that switch contexts temporarily should record Depth() beforehand
// and make the original context current that many times to restore it.
//
// The drawable is told about lifecycle transitions through the Drawable
// interface. The first time a context is made current the drawable is told
// that the context has been realized. Every make-current and release is then
// reported to the drawable.
//
// Native GL contexts are usually bound to an OS thread. Callers driving a
// real context should call runtime.LockOSThread() on the goroutine that uses
// it.
package glcontext
