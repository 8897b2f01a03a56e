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

// Package config holds the persistent settings used to request an offscreen
// drawable. Settings are stored with the prefs package in the resource
// directory returned by the paths package and can be overridden for a single
// run with the prefs command line stack.
//
// Preferences are turned into a capabilities request with Capabilities() and
// into the drawable configuration with DrawableConfig(). The request is not
// fixed. Passing it through capabilities.FixOffscreen() is the
// responsibility of the caller.
package config
