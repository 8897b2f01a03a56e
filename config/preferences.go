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

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/glfbo/capabilities"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/drawable"
	"github.com/jetsetilly/glfbo/paths"
	"github.com/jetsetilly/glfbo/prefs"
)

// the name of the preferences file in the resource directory.
const prefsFile = "preferences"

// default surface size.
const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Error patterns.
const (
	InvalidValue = "config: %s: invalid value (%v)"
	InvalidSize  = "config: invalid size (%s)"
)

// Preferences for an offscreen drawable.
type Preferences struct {
	dsk *prefs.Disk

	Samples        prefs.Int
	DoubleBuffered prefs.Bool
	Alpha          prefs.Bool
	Stencil        prefs.Bool
	TextureUnit    prefs.Int
	Debug          prefs.Bool
	Size           *prefs.Generic

	width  int
	height int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences loads the preferences from the default resource location.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile loads the preferences from the named file. The file
// is created with the default values if it does not exist.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Size = prefs.NewGeneric(
		func(s string) error {
			w, h, err := parseSize(s)
			if err != nil {
				return err
			}
			p.width = w
			p.height = h
			return nil
		},
		func() string {
			return fmt.Sprintf("%dx%d", p.width, p.height)
		},
	)

	nonNegative := func(key string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) < 0 {
				return curated.Errorf(InvalidValue, key, v)
			}
			return nil
		}
	}
	p.Samples.SetHookPre(nonNegative("fbo.samples"))
	p.TextureUnit.SetHookPre(nonNegative("fbo.textureUnit"))

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	entries := []struct {
		key string
		p   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"fbo.samples", &p.Samples},
		{"fbo.doubleBuffered", &p.DoubleBuffered},
		{"fbo.alpha", &p.Alpha},
		{"fbo.stencil", &p.Stencil},
		{"fbo.textureUnit", &p.TextureUnit},
		{"fbo.debug", &p.Debug},
		{"fbo.size", p.Size},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Samples.Set(0); err != nil {
		return err
	}
	if err := p.DoubleBuffered.Set(true); err != nil {
		return err
	}
	if err := p.Alpha.Set(false); err != nil {
		return err
	}
	if err := p.Stencil.Set(false); err != nil {
		return err
	}
	if err := p.TextureUnit.Set(0); err != nil {
		return err
	}
	if err := p.Debug.Set(false); err != nil {
		return err
	}
	return p.Size.Set(fmt.Sprintf("%dx%d", defaultWidth, defaultHeight))
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Dimensions of the surface.
func (p *Preferences) Dimensions() (int, int) {
	return p.width, p.height
}

// Capabilities returns the request described by the preferences. The request
// is for an FBO surface.
func (p *Preferences) Capabilities() capabilities.Capabilities {
	caps := capabilities.Default()
	caps.Onscreen = false
	caps.FBO = true
	caps.DoubleBuffered = p.DoubleBuffered.Get().(bool)
	caps.SetSamples(p.Samples.Get().(int))
	if p.Alpha.Get().(bool) {
		caps.AlphaBits = 8
		caps.SetBackgroundOpaque(false)
	}
	if p.Stencil.Get().(bool) {
		caps.StencilBits = 8
	}
	return caps
}

// DrawableConfig returns the configuration for a new drawable.
func (p *Preferences) DrawableConfig() drawable.Config {
	return drawable.Config{
		TextureUnit: p.TextureUnit.Get().(int),
		Debug:       p.Debug.Get().(bool),
	}
}

// parseSize parses a string of the form "WxH". The empty string is the
// default size.
func parseSize(s string) (int, int, error) {
	if strings.TrimSpace(s) == "" {
		return defaultWidth, defaultHeight, nil
	}
	f := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(f) != 2 {
		return 0, 0, curated.Errorf(InvalidSize, s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(f[0]))
	if err != nil || w <= 0 {
		return 0, 0, curated.Errorf(InvalidSize, s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(f[1]))
	if err != nil || h <= 0 {
		return 0, 0, curated.Errorf(InvalidSize, s)
	}
	return w, h, nil
}
