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

// Package logger is the central log for the module. Entries are tagged with
// the name of the component that created them and are kept in a bounded
// list. Consecutive identical entries are collapsed into a single entry with a
// repeat count.
//
// Every call to Log() and Logf() takes a Permission. Logging only happens if
// the permission allows it. The Allow value always allows logging. Components
// with optional tracing, such as the offscreen drawable in debug mode, pass a
// permission derived from their configuration:
//
//	logger.Logf(dw.cfg.permission(), "fbo", "swap: back %d, front %d", back, front)
//
// The central log can be echoed to an io.Writer with SetEcho() and written
// out in full, or only the most recent entries, with Write() and Tail().
package logger
