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

package glapi

// GL enum values.
const (
	NONE     = 0x0000
	NO_ERROR = 0x0000

	FRAMEBUFFER              = 0x8D40
	READ_FRAMEBUFFER         = 0x8CA8
	DRAW_FRAMEBUFFER         = 0x8CA9
	READ_FRAMEBUFFER_BINDING = 0x8CAA
	DRAW_FRAMEBUFFER_BINDING = 0x8CA6
	FRAMEBUFFER_COMPLETE     = 0x8CD5

	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD

	RENDERBUFFER          = 0x8D41
	RENDERBUFFER_SAMPLES  = 0x8CAB
	RENDERBUFFER_WIDTH    = 0x8D42
	RENDERBUFFER_HEIGHT   = 0x8D43
	MAX_RENDERBUFFER_SIZE = 0x84E8
	MAX_SAMPLES           = 0x8D57

	COLOR_ATTACHMENT0        = 0x8CE0
	DEPTH_ATTACHMENT         = 0x8D00
	STENCIL_ATTACHMENT       = 0x8D20
	DEPTH_STENCIL_ATTACHMENT = 0x821A

	TEXTURE_2D         = 0x0DE1
	TEXTURE0           = 0x84C0
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F

	RGB               = 0x1907
	RGBA              = 0x1908
	RGB8              = 0x8051
	RGBA8             = 0x8058
	DEPTH_COMPONENT16 = 0x81A5
	DEPTH_COMPONENT24 = 0x81A6
	DEPTH_COMPONENT32 = 0x81A7
	DEPTH24_STENCIL8  = 0x88F0
	UNSIGNED_BYTE     = 0x1401

	COLOR_BUFFER_BIT   = 0x00004000
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400

	FRONT = 0x0404
	BACK  = 0x0405

	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
)

// StatusString returns a readable name for a framebuffer status value.
func StatusString(status uint32) string {
	switch status {
	case FRAMEBUFFER_COMPLETE:
		return "complete"
	case FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "incomplete attachment"
	case FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "missing attachment"
	case FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "incomplete multisample"
	case FRAMEBUFFER_UNSUPPORTED:
		return "unsupported"
	}
	return "unknown status"
}
