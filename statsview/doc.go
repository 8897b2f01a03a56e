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

// Package statsview launches an optional statistics server. The server is
// built only when the statsview build constraint is present.
//
// It provides a HTTP server running locally offering runtime statistics,
// useful for watching allocation behaviour while a drawable is repeatedly
// resized or swapped. Underlying functionality is provided by
// "github.com/go-echarts/statsview"
//
// The server listens on DefaultAddress unless another address is given to
// Launch(). Graphical statistics are served at /debug/statsview and standard
// Go pprof statistics at /debug/pprof/. In builds without the constraint
// Launch() fails with NotAvailable.
package statsview
