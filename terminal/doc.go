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

// Package terminal is a minimal front end for the emulator running in a
// posix terminal. The terminal is put into raw mode and every byte typed is
// translated into a key of the emulated keyboard. The text screen of the
// emulated machine is drawn with ANSI cursor movement.
//
// Keys are decoded as follows:
//
//	printable characters    the key producing the character, with shift if required
//	return                  ENTER
//	backspace               LEFT
//	cursor keys             UP, DOWN, LEFT, RIGHT
//	escape                  BREAK
//	ctrl-L                  CLEAR
//	ctrl-C                  quit the emulator
package terminal
