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

// Package capabilities describes the pixel format and surface kind of a GL
// drawable. A Capabilities value is used in two ways: as a request, when
// choosing how a drawable should be created, and as a record of what was
// actually achieved, once the drawable's resources exist.
//
// The rule table functions (Fix, FixOffscreen, etc.) adjust a requested
// Capabilities value so that it is consistent with what the platform can
// provide. Capabilities are plain values so the functions return a modified
// copy and never change the request in place.
package capabilities
