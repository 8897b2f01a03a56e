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

// Package curated is a helper package for the plain Go error type. Curated
// errors implement the error interface and are created with Errorf().
//
// Errorf() takes a formatting pattern and placeholder values, in the manner of
// fmt.Errorf(). The pattern is what distinguishes one curated error from
// another. Packages in this module export their patterns as string constants
// so that callers can test for a specific failure:
//
//	err := dw.SetSampleCount(ctx, 4)
//	if curated.Has(err, drawable.SampleMismatch) {
//		// the driver did not allocate the sample count we asked for
//	}
//
// Is() tests the outermost error only. Has() searches the entire chain, which
// includes every curated error passed as a placeholder value. An error
// created with more than one curated value (for example, a failed reset
// together with a failed context release) is therefore reported by Has() for
// each of its causes.
//
// The Error() implementation normalises the chain so that it does not contain
// duplicate adjacent parts. Parts are the sub-strings separated by ": ". So
// that
//
//	curated.Errorf("fbo: %v", curated.Errorf("fbo: not yet implemented"))
//
// prints as "fbo: not yet implemented" and not "fbo: fbo: not yet implemented".
//
// IsAny() answers whether an error was created by Errorf() at all. An
// uncurated error from a curated package usually indicates an unexpected
// failure from a third-party library.
package curated
