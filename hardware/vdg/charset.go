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

package vdg

// the internal character generator. seven rows of five pixels for each of the
// 64 characters. the least significant bit is the leftmost pixel.
var charset = [64 * 7]uint8{
	0x0e, 0x11, 0x10, 0x16, 0x15, 0x15, 0x0e, // @
	0x04, 0x0a, 0x11, 0x11, 0x1f, 0x11, 0x11, // A
	0x0f, 0x12, 0x12, 0x0e, 0x12, 0x12, 0x0f, // B
	0x0e, 0x11, 0x01, 0x01, 0x01, 0x11, 0x0e, // C
	0x0f, 0x12, 0x12, 0x12, 0x12, 0x12, 0x0f, // D
	0x1f, 0x01, 0x01, 0x0f, 0x01, 0x01, 0x1f, // E
	0x1f, 0x01, 0x01, 0x0f, 0x01, 0x01, 0x01, // F
	0x1e, 0x01, 0x01, 0x19, 0x11, 0x11, 0x1e, // G
	0x11, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11, // H
	0x0e, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e, // I
	0x10, 0x10, 0x10, 0x10, 0x11, 0x11, 0x0e, // J
	0x11, 0x09, 0x05, 0x03, 0x05, 0x09, 0x11, // K
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x1f, // L
	0x11, 0x1b, 0x15, 0x15, 0x11, 0x11, 0x11, // M
	0x11, 0x13, 0x15, 0x19, 0x11, 0x11, 0x11, // N
	0x1f, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1f, // O
	0x0f, 0x11, 0x11, 0x0f, 0x01, 0x01, 0x01, // P
	0x0e, 0x11, 0x11, 0x11, 0x15, 0x09, 0x16, // Q
	0x0f, 0x11, 0x11, 0x0f, 0x05, 0x09, 0x11, // R
	0x0e, 0x11, 0x02, 0x04, 0x08, 0x11, 0x0e, // S
	0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, // T
	0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, // U
	0x11, 0x11, 0x11, 0x0a, 0x0a, 0x04, 0x04, // V
	0x11, 0x11, 0x11, 0x15, 0x15, 0x1b, 0x11, // W
	0x11, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x11, // X
	0x11, 0x11, 0x0a, 0x04, 0x04, 0x04, 0x04, // Y
	0x1f, 0x10, 0x08, 0x04, 0x02, 0x01, 0x1f, // Z
	0x07, 0x01, 0x01, 0x01, 0x01, 0x01, 0x07, // [
	0x01, 0x01, 0x02, 0x04, 0x08, 0x10, 0x10, // \
	0x1c, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1c, // ]
	0x04, 0x0e, 0x15, 0x04, 0x04, 0x04, 0x04, // up arrow
	0x00, 0x04, 0x02, 0x1f, 0x02, 0x04, 0x00, // left arrow
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // space
	0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04, // !
	0x0a, 0x0a, 0x0a, 0x00, 0x00, 0x00, 0x00, // "
	0x0a, 0x0a, 0x1b, 0x00, 0x1b, 0x0a, 0x0a, // #
	0x04, 0x1e, 0x01, 0x0e, 0x10, 0x0f, 0x04, // $
	0x13, 0x13, 0x08, 0x04, 0x02, 0x19, 0x19, // %
	0x02, 0x05, 0x05, 0x02, 0x15, 0x09, 0x16, // &
	0x06, 0x06, 0x06, 0x00, 0x00, 0x00, 0x00, // '
	0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x04, // (
	0x04, 0x08, 0x10, 0x10, 0x10, 0x08, 0x04, // )
	0x00, 0x04, 0x0e, 0x1f, 0x0e, 0x04, 0x00, // *
	0x00, 0x04, 0x04, 0x1f, 0x04, 0x04, 0x00, // +
	0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x01, // ,
	0x00, 0x00, 0x00, 0x1f, 0x00, 0x00, 0x00, // -
	0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, // .
	0x10, 0x10, 0x08, 0x04, 0x02, 0x01, 0x01, // /
	0x06, 0x09, 0x09, 0x09, 0x09, 0x09, 0x06, // 0
	0x04, 0x06, 0x04, 0x04, 0x04, 0x04, 0x0e, // 1
	0x0e, 0x11, 0x10, 0x0e, 0x01, 0x01, 0x1f, // 2
	0x0e, 0x11, 0x10, 0x0c, 0x10, 0x11, 0x0e, // 3
	0x08, 0x0c, 0x0a, 0x1f, 0x08, 0x08, 0x08, // 4
	0x1f, 0x01, 0x0f, 0x10, 0x10, 0x11, 0x0e, // 5
	0x0e, 0x01, 0x01, 0x0f, 0x11, 0x11, 0x0e, // 6
	0x1f, 0x10, 0x08, 0x04, 0x02, 0x01, 0x01, // 7
	0x0e, 0x11, 0x11, 0x0e, 0x11, 0x11, 0x0e, // 8
	0x0e, 0x11, 0x11, 0x1e, 0x10, 0x10, 0x0e, // 9
	0x00, 0x06, 0x06, 0x00, 0x06, 0x06, 0x00, // :
	0x06, 0x06, 0x00, 0x06, 0x06, 0x04, 0x02, // ;
	0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08, // <
	0x00, 0x00, 0x1f, 0x00, 0x1f, 0x00, 0x00, // =
	0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02, // >
	0x06, 0x09, 0x08, 0x04, 0x04, 0x00, 0x04, // ?
}

// ASCII returns the printable character for a byte of video memory in the
// alphanumeric mode. Semigraphics blocks are returned as a space.
func ASCII(data uint8) rune {
	if data&0x80 == 0x80 {
		return ' '
	}
	c := data & 0x3f
	if c < 0x20 {
		return rune(c) + '@'
	}
	return rune(c)
}
