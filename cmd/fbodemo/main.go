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

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/glfbo/config"
	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/drawable"
	"github.com/jetsetilly/glfbo/glapi"
	"github.com/jetsetilly/glfbo/glcontext"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/prefs"
	"github.com/jetsetilly/glfbo/sdlbackend"
	"github.com/jetsetilly/glfbo/statsview"
	"github.com/jetsetilly/glfbo/version"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "fbodemo"
	app.Description = "Exercise an offscreen framebuffer drawable"
	app.Usage = "fbodemo [options]"
	v, r, _ := version.Version()
	app.Version = fmt.Sprintf("%s (%s)", v, r)
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "prefs",
			Usage: "Preference values for this run only (eg. \"fbo.samples::4; fbo.size::320x200\")",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Width of the drawable (0 = use preferences)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Height of the drawable (0 = use preferences)",
		},
		cli.IntFlag{
			Name:  "samples",
			Usage: "Number of MSAA samples (overrides preferences)",
		},
		cli.BoolFlag{
			Name:  "single",
			Usage: "Request a single buffered drawable",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to draw",
			Value: 60,
		},
		cli.StringFlag{
			Name:  "resize",
			Usage: "Resize the drawable to WxH half way through the run",
		},
		cli.IntFlag{
			Name:  "change-samples",
			Usage: "Change the sample count half way through the run (-1 = no change)",
			Value: -1,
		},
		cli.BoolFlag{
			Name:  "show",
			Usage: "Show every frame in a window",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "Write the final front buffer to a PNG file",
		},
		cli.StringFlag{
			Name:  "dump",
			Usage: "Write a graph of the drawable state to a dot file",
		},
		cli.BoolFlag{
			Name:  "log",
			Usage: "Echo log entries to stdout",
		},
		cli.BoolFlag{
			Name:  "statsview",
			Usage: fmt.Sprintf("Run the stats server (available %v)", statsview.Available()),
		},
		cli.StringFlag{
			Name:  "statsview-addr",
			Usage: "Address of the stats server",
			Value: statsview.DefaultAddress,
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("log") {
		logger.SetEcho(os.Stdout)
	}

	if c.Bool("statsview") {
		err := statsview.Launch(os.Stdout, c.String("statsview-addr"))
		if curated.Is(err, statsview.NotAvailable) {
			logger.Log(logger.Allow, "fbodemo", err.Error())
		} else if err != nil {
			return err
		}
	}

	prefs.PushCommandLineStack(c.String("prefs"))
	p, err := config.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "fbodemo", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	caps := p.Capabilities()
	if c.IsSet("samples") {
		caps.SetSamples(c.Int("samples"))
	}
	if c.Bool("single") {
		caps.DoubleBuffered = false
	}

	width, height := p.Dimensions()
	if c.Int("width") > 0 {
		width = c.Int("width")
	}
	if c.Int("height") > 0 {
		height = c.Int("height")
	}

	var resize struct {
		width, height int
		ok            bool
	}
	if s := c.String("resize"); s != "" {
		resize.width, resize.height, err = parseSize(s)
		if err != nil {
			return err
		}
		resize.ok = true
	}

	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("frames must be a positive value")
	}

	parent, err := sdlbackend.NewParent(width, height)
	if err != nil {
		return err
	}
	defer parent.Destroy()

	d, ctx, err := sdlbackend.NewOffscreen(parent, caps, width, height, p.DrawableConfig())
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	if c.Bool("show") {
		d.SetPresentCallback(sdlbackend.Presenter(parent, d, ctx))
	}

	logger.Logf(logger.Allow, "fbodemo", "%s", d.Surface().Capabilities())

	for i := 0; i < frames; i++ {
		// reconfiguration happens between frames, with the context released
		if i == frames/2 {
			if resize.ok {
				err = d.Resize(ctx, resize.width, resize.height)
				if err != nil {
					return err
				}
			}
			if n := c.Int("change-samples"); n >= 0 {
				err = d.SetSampleCount(ctx, n)
				if err != nil {
					return err
				}
			}
		}

		err = displayFrame(ctx, d, i, frames)
		if err != nil {
			return err
		}

		if i == frames/2 {
			logger.Logf(logger.Allow, "fbodemo", "%s", d)
		}
	}

	if pth := c.String("out"); pth != "" {
		err = writeFront(ctx, d, pth)
		if err != nil {
			return err
		}
	}

	if pth := c.String("dump"); pth != "" {
		f, err := os.Create(pth)
		if err != nil {
			return err
		}
		d.DumpState(f)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// displayFrame makes the context current, draws to the back buffer and swaps.
// The back buffer is cleared to a colour that fades with the frame number.
func displayFrame(ctx *glcontext.Context, d *drawable.Drawable, frame int, frames int) (err error) {
	err = ctx.MakeCurrent()
	if err != nil {
		return err
	}
	defer releaseContext(ctx, &err)

	gl := ctx.GL()
	v := float32(frame) / float32(frames)
	gl.ClearColor(v, 0.5, 1.0-v, 1.0)
	gl.Clear(glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT)
	if e := gl.GetError(); e != glapi.NO_ERROR {
		return fmt.Errorf("fbodemo: frame %d: gl error %#x", frame, e)
	}

	return d.SwapBuffers()
}

// writeFront copies the front buffer of the drawable to a PNG file.
func writeFront(ctx *glcontext.Context, d *drawable.Drawable, pth string) (err error) {
	err = ctx.MakeCurrent()
	if err != nil {
		return err
	}
	defer releaseContext(ctx, &err)

	img, err := snapshot(ctx.Raw(), d.DefaultReadFramebuffer(), d.Width(), d.Height())
	if err != nil {
		return err
	}

	// restore default bindings
	ctx.GL().BindFramebuffer(glapi.FRAMEBUFFER, 0)

	f, err := os.Create(pth)
	if err != nil {
		return err
	}

	err = encodePNG(f, img)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// releaseContext releases the context. A release failure is stored in err
// if err does not already hold an error.
func releaseContext(ctx *glcontext.Context, err *error) {
	if rerr := ctx.Release(); rerr != nil && *err == nil {
		*err = rerr
	}
}

func parseSize(s string) (int, int, error) {
	f := strings.Split(strings.ToLower(s), "x")
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("fbodemo: invalid size (%s)", s)
	}
	w, err := strconv.Atoi(f[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("fbodemo: invalid size (%s)", s)
	}
	h, err := strconv.Atoi(f[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("fbodemo: invalid size (%s)", s)
	}
	return w, h, nil
}
