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

import "github.com/jetsetilly/glfbo/fbobject"

// ring is the set of framebuffers and the back and front indices into it.
type ring struct {
	slots []*fbobject.Object
	back  int
	front int
}

// newRing returns a ring of uncreated framebuffers. The first slot is the
// back buffer and the last slot is the front buffer.
func newRing(size int) *ring {
	r := &ring{
		slots: make([]*fbobject.Object, size),
		back:  0,
		front: size - 1,
	}
	for i := range r.slots {
		r.slots[i] = fbobject.New()
	}
	return r
}

func (r *ring) size() int {
	return len(r.slots)
}

func (r *ring) backSlot() *fbobject.Object {
	return r.slots[r.back]
}

func (r *ring) frontSlot() *fbobject.Object {
	return r.slots[r.front]
}

// index returns the slot number of the framebuffer. returns -1 if the
// framebuffer is not in the ring
func (r *ring) index(fbo *fbobject.Object) int {
	for i := range r.slots {
		if r.slots[i] == fbo {
			return i
		}
	}
	return -1
}

// consistent returns true if the front buffer immediately precedes the back
// buffer.
func (r *ring) consistent() bool {
	return (r.front+1)%r.size() == r.back
}

// rotate makes the back buffer the front buffer and moves the back buffer on
// to the next slot.
func (r *ring) rotate() {
	r.front = r.back
	r.back = (r.back + 1) % r.size()
}
