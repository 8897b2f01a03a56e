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

package glcontext

import (
	"sync"

	"github.com/jetsetilly/glfbo/assert"
)

// contexts current on each goroutine
var current = struct {
	crit sync.Mutex
	ctx  map[uint64]*Context
}{
	ctx: make(map[uint64]*Context),
}

// Current returns the context that is current on the calling goroutine.
// Returns nil if no context is current.
func Current() *Context {
	current.crit.Lock()
	defer current.crit.Unlock()
	return current.ctx[assert.GetGoRoutineID()]
}

func setCurrent(id uint64, ctx *Context) {
	current.crit.Lock()
	defer current.crit.Unlock()
	current.ctx[id] = ctx
}

func clearCurrent(id uint64) {
	current.crit.Lock()
	defer current.crit.Unlock()
	delete(current.ctx, id)
}
