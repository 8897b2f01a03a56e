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

// Package prefs provides typed preference values that can be persisted to a
// file on disk and overridden from the command line.
//
// The Bool and Int types hold a single live value and can be given hook
// functions that run before and after every Set(). The Generic type wraps a
// pair of set/get functions and is useful when the preference is part of some
// other structure, such as the size of a surface.
//
// Values are associated with a key and a Disk:
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("fbo.samples", &samples)
//	err = dsk.Load(true)
//
// The file on disk has a warning line followed by one "key :: value" entry
// per line, sorted by key. Entries in the file that are not known to the Disk
// instance are preserved when the Disk is saved, so several Disk instances can
// share one file.
//
// The command line stack allows preference values to be specified for a
// single run of a program. PushCommandLineStack() parses a string of the
// form "key::value; key::value". Values found on the top of the stack are used
// by Disk.Load() in preference to the values in the file and are removed from
// the stack once used.
package prefs
