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

// Package logger is the central log for the emulation. Entries are tagged
// with the name of the component making the entry and are kept in a ring of
// limited size. Identical consecutive entries are collapsed into one entry
// with a repeat count.
//
// Whether a log entry is made is decided by the Permission argument of the
// Log() and Logf() functions. The Allow value can be used when there is no
// other Permission implementation to hand.
package logger
