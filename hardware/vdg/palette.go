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

import "image/color"

// Colour indexes.
const (
	Green = iota
	Yellow
	Blue
	Red
	Buff
	Cyan
	Magenta
	Orange
	Black
	DarkGreen
	DarkOrange
)

// Palette of the VDG.
var Palette = [...]color.RGBA{
	Green:      {R: 0x1c, G: 0xd5, B: 0x10, A: 0xff},
	Yellow:     {R: 0xe2, G: 0xdb, B: 0x0f, A: 0xff},
	Blue:       {R: 0x03, G: 0x20, B: 0xff, A: 0xff},
	Red:        {R: 0xe2, G: 0x20, B: 0x0a, A: 0xff},
	Buff:       {R: 0xcd, G: 0xdb, B: 0xe0, A: 0xff},
	Cyan:       {R: 0x16, G: 0xd0, B: 0xe2, A: 0xff},
	Magenta:    {R: 0xcb, G: 0x39, B: 0xe2, A: 0xff},
	Orange:     {R: 0xff, G: 0xbb, B: 0x44, A: 0xff},
	Black:      {R: 0x10, G: 0x10, B: 0x10, A: 0xff},
	DarkGreen:  {R: 0x00, G: 0x34, B: 0x00, A: 0xff},
	DarkOrange: {R: 0x32, G: 0x14, B: 0x00, A: 0xff},
}
