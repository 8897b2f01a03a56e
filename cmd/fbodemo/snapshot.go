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
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jetsetilly/glfbo/glapi"
)

// snapshot reads the colour buffer of the framebuffer. The image is flipped
// so that the first row of the image is the top of the framebuffer.
func snapshot(gl glapi.GL, fb uint32, width int, height int) (*image.RGBA, error) {
	gl.BindFramebuffer(glapi.READ_FRAMEBUFFER, fb)

	pix := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), glapi.RGBA, glapi.UNSIGNED_BYTE, pix)
	if e := gl.GetError(); e != glapi.NO_ERROR {
		return nil, fmt.Errorf("fbodemo: snapshot: gl error %#x", e)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], pix[(height-1-y)*stride:])
	}

	return img, nil
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	err := enc.Encode(w, img)
	if err != nil {
		return fmt.Errorf("fbodemo: %w", err)
	}
	return nil
}
