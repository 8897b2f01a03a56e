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

// Package surface is the native surface of an offscreen drawable. The
// surface has no window of its own. Its size comes from an UpstreamHook and
// the capabilities that were achieved by the drawable are recorded on it.
//
// The Proxy type has a lock that must be held while the size of the surface
// is changed. The lock is not reentrant.
package surface
