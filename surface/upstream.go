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

package surface

import "sync"

// UpstreamHook supplies the size of a surface.
type UpstreamHook interface {
	Size() (width int, height int)
}

// MutableSize is an UpstreamHook whose size can be changed.
type MutableSize interface {
	UpstreamHook
	SetSize(width int, height int)
}

type mutableSize struct {
	crit   sync.Mutex
	width  int
	height int
}

// NewMutableSize returns an UpstreamHook whose size can be changed.
func NewMutableSize(width int, height int) MutableSize {
	return &mutableSize{width: width, height: height}
}

func (s *mutableSize) Size() (int, int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.width, s.height
}

func (s *mutableSize) SetSize(width int, height int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.width = width
	s.height = height
}

type fixedSize struct {
	width  int
	height int
}

// NewFixedSize returns an UpstreamHook with a fixed size.
func NewFixedSize(width int, height int) UpstreamHook {
	return fixedSize{width: width, height: height}
}

func (s fixedSize) Size() (int, int) {
	return s.width, s.height
}
