// This file is part of Gopher6809.
//
// Gopher6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6809.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the creation of typed preference values. The
// value types Bool, Int, Float and String can all be set with either a value
// of the native type or with a string, which allows preferences to be
// specified on the command line.
//
// Command line preferences are specified as a string of key/value pairs:
//
//	"disk.writeback::true; audio.rate::22050"
//
// The string is added to the command line stack with PushCommandLineStack().
// Preference groups consult the stack with GetCommandLinePref() when they are
// created. Values retrieved from the stack are removed from it.
//
// Persistence of preference values to disk is not supported.
package prefs
