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

package drawable

// Error patterns.
const (
	// the driver allocated a different number of samples to the number
	// requested. the framebuffer set is not usable
	SampleMismatch = "drawable: slot %d: sample count mismatch: wanted %d, got %d"

	InvalidBuffer          = "drawable: invalid buffer (%d)"
	MultisampleBackTexture = "drawable: no back buffer texture with multisampling (%d samples)"

	FrontColorbufferMissing    = "drawable: front colorbuffer is missing (%d samples)"
	FrontColorbufferNotTexture = "drawable: front colorbuffer is not a texture (%s)"
	RingInconsistent           = "drawable: ring inconsistent: front %d, back %d, size %d"
	NotInitialised             = "drawable: not initialised"

	ResetFailed           = "drawable: reset failed: %v"
	ReleaseFailed         = "drawable: context release failed: %v"
	ResetAndReleaseFailed = "drawable: reset failed: %v: context release failed: %v"

	NotResizeable = "drawable: surface is not resizeable"
	NoParent      = "drawable: no parent drawable"
	NoContext     = "drawable: no context for reset"
)
