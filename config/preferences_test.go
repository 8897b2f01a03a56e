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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/glfbo/config"
	"github.com/jetsetilly/glfbo/prefs"
	"github.com/jetsetilly/glfbo/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences")
}

func TestDefaults(t *testing.T) {
	fn := tmpPrefFile(t)

	p, err := config.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	// file is created on first use
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(data), "fbo.size :: 640x480\n"))

	w, h := p.Dimensions()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)

	caps := p.Capabilities()
	test.ExpectSuccess(t, caps.FBO)
	test.ExpectFailure(t, caps.Onscreen)
	test.ExpectSuccess(t, caps.DoubleBuffered)
	test.ExpectFailure(t, caps.SampleBuffers)
	test.ExpectEquality(t, caps.AlphaBits, 0)
	test.ExpectEquality(t, caps.StencilBits, 0)
	test.ExpectSuccess(t, caps.BackgroundOpaque)

	cfg := p.DrawableConfig()
	test.ExpectEquality(t, cfg.TextureUnit, 0)
	test.ExpectFailure(t, cfg.Debug)
}

func TestPersist(t *testing.T) {
	fn := tmpPrefFile(t)

	p, err := config.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Samples.Set(4))
	test.ExpectSuccess(t, p.DoubleBuffered.Set(false))
	test.ExpectSuccess(t, p.Alpha.Set(true))
	test.ExpectSuccess(t, p.Stencil.Set("true"))
	test.ExpectSuccess(t, p.TextureUnit.Set("2"))
	test.ExpectSuccess(t, p.Debug.Set(true))
	test.ExpectSuccess(t, p.Size.Set("320x200"))
	test.DemandSuccess(t, p.Save())

	q, err := config.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	w, h := q.Dimensions()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	caps := q.Capabilities()
	test.ExpectEquality(t, caps.Samples, 4)
	test.ExpectSuccess(t, caps.SampleBuffers)
	test.ExpectFailure(t, caps.DoubleBuffered)
	test.ExpectEquality(t, caps.AlphaBits, 8)
	test.ExpectFailure(t, caps.BackgroundOpaque)
	test.ExpectEquality(t, caps.StencilBits, 8)

	cfg := q.DrawableConfig()
	test.ExpectEquality(t, cfg.TextureUnit, 2)
	test.ExpectSuccess(t, cfg.Debug)

	// reverting to the defaults leaves the file untouched until saved
	test.ExpectSuccess(t, q.SetDefaults())
	test.ExpectEquality(t, q.Samples.Get().(int), 0)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Samples.Get().(int), 4)
}

func TestCommandLine(t *testing.T) {
	fn := tmpPrefFile(t)

	prefs.PushCommandLineStack("fbo.samples::2; fbo.size::100x50; unknown::1")
	p, err := config.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	// only the unknown key is left on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	w, h := p.Dimensions()
	test.ExpectEquality(t, w, 100)
	test.ExpectEquality(t, h, 50)
	test.ExpectEquality(t, p.Capabilities().Samples, 2)
}

func TestInvalidValues(t *testing.T) {
	p, err := config.NewPreferencesFromFile(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Samples.Set(-1))
	test.ExpectEquality(t, p.Samples.Get().(int), 0)
	test.ExpectFailure(t, p.TextureUnit.Set(-2))

	test.ExpectFailure(t, p.Size.Set("foo"))
	test.ExpectFailure(t, p.Size.Set("0x10"))
	test.ExpectFailure(t, p.Size.Set("10x"))
	test.ExpectFailure(t, p.Size.Set(10))
	test.ExpectEquality(t, p.Size.String(), "640x480")

	test.ExpectSuccess(t, p.Size.Set("200X100"))
	test.ExpectEquality(t, p.Size.String(), "200x100")

	// the empty string is the default size
	test.ExpectSuccess(t, p.Size.Reset())
	test.ExpectEquality(t, p.Size.String(), "640x480")
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("fbo.samples :: 4\n"), 0o600))

	_, err := config.NewPreferencesFromFile(fn)
	test.ExpectFailure(t, err)
}
