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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect* functions report a failure with t.Errorf() and allow the test to
// continue. The Demand* functions report with t.Fatalf() and should be used
// when later parts of the test depend on the value being correct. For
// example, testing the length of a slice before indexing it.
//
// Success and failure are judged according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is worth noting. An untyped nil is considered a success, which
// is what we want when a function returns a nil error.
//
// The CompareWriter type implements io.Writer and is used to capture output,
// for example from the logger package, for comparison with an expected
// string.
//
// All functions take an optional list of tags. The tags are printed before the
// failure message and help identify the failing case when testing inside a
// loop.
package test
