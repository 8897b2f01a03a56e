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

// Package sdlbackend provides GL contexts for offscreen drawables using SDL.
//
// The Parent type is a hidden SDL OpenGL window. The window is never shown
// unless a Presenter is used to display the front buffer of a drawable. All
// contexts are created against the window and share its pixel format.
//
// SDL requires that all window and context functions be called from the main
// OS thread. NewParent() locks the calling goroutine to its OS thread and all
// other functions in the package should be called from the same goroutine.
package sdlbackend
