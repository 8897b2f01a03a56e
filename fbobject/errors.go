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

package fbobject

// Error patterns.
const (
	Incomplete           = "fbobject: framebuffer incomplete (%s)"
	TextureOnMultisample = "fbobject: cannot attach texture to a multisample framebuffer (%d samples)"
	SizeExceeded         = "fbobject: size %dx%d exceeds driver maximum of %d"
	UnsupportedDepthBits = "fbobject: unsupported depth bits (%d) for %s attachment"
	NotCreated           = "fbobject: framebuffer has not been created"
	NoTexture            = "fbobject: no texture to use"
)
