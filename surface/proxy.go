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

import (
	"sync"

	"github.com/jetsetilly/glfbo/capabilities"
	"github.com/jetsetilly/glfbo/curated"
)

// NotReady is returned by Lock() if the surface has been destroyed.
const NotReady = "surface: not ready"

// Proxy is a surface without a native window.
type Proxy struct {
	lock sync.Mutex

	// crit protects the fields below. it is separate from lock so that the
	// query functions can be used while the surface is locked
	crit      sync.Mutex
	upstream  UpstreamHook
	caps      capabilities.Capabilities
	destroyed bool
}

// NewProxy is the preferred method of initialisation for the Proxy type.
func NewProxy(upstream UpstreamHook, caps capabilities.Capabilities) *Proxy {
	return &Proxy{
		upstream: upstream,
		caps:     caps,
	}
}

// Lock the surface. Fails with NotReady if the surface has been destroyed.
func (p *Proxy) Lock() error {
	p.lock.Lock()

	p.crit.Lock()
	defer p.crit.Unlock()
	if p.destroyed {
		p.lock.Unlock()
		return curated.Errorf(NotReady)
	}
	return nil
}

// Unlock a surface previously locked with Lock().
func (p *Proxy) Unlock() {
	p.lock.Unlock()
}

// Width of the surface.
func (p *Proxy) Width() int {
	w, _ := p.Upstream().Size()
	return w
}

// Height of the surface.
func (p *Proxy) Height() int {
	_, h := p.Upstream().Size()
	return h
}

// Upstream returns the hook that supplies the size of the surface.
func (p *Proxy) Upstream() UpstreamHook {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.upstream
}

// Capabilities returns the capabilities recorded for the surface.
func (p *Proxy) Capabilities() capabilities.Capabilities {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.caps
}

// SetCapabilities records the capabilities achieved for the surface.
func (p *Proxy) SetCapabilities(caps capabilities.Capabilities) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.caps = caps
}

// Destroy the surface. Subsequent calls to Lock() will fail.
func (p *Proxy) Destroy() {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.destroyed = true
}

// IsDestroyed returns true if Destroy() has been called.
func (p *Proxy) IsDestroyed() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.destroyed
}
