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

// Package joystick emulates the analogue joystick ports and the comparator
// circuit used to read them.
//
// There is no analogue to digital converter as such. The CPU writes a six bit
// value to the DAC on the second PIA (side A, bits 2 to 7) and reads bit 7 of
// side A on the first PIA to discover whether the selected joystick axis is
// at a higher voltage than the DAC output. The ROM performs a binary search
// to find the axis position. The axis is selected by the C2 lines of the
// first PIA.
//
// The joystick buttons pull the low bits of the first PIA's side A to zero.
// Those inputs are shared with the keyboard rows so the Joystick implements
// the keyboard.Buttons interface.
package joystick
