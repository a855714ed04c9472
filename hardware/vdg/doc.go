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

// Package vdg implements the MC6847 Video Display Generator. The VDG is
// driven by the machine's scheduler. It does not keep time itself but it
// tells the scheduler how long it will be until its next event.
//
// A field is made up of 262 lines:
//
//	lines 0-12	vertical blanking
//	lines 13-37	top border
//	lines 38-229	active display
//	lines 230-255	bottom border
//	lines 256-261	vertical retrace. FS is asserted
//
// Each line is divided into four zones: the horizontal sync pulse, the left
// border, the active area and the right border. The active area is made up
// of 32 byte slots, each the length of one CPU cycle. In every slot of an
// active line the VDG fetches a byte through the SAM and draws it to the
// Framebuffer.
//
// The scheduler starts each field with StartField() and then calls Advance()
// each time the previously returned delay has elapsed. Advance() returns zero
// when the field is complete, at which point the scheduler calls EndField().
//
// The mode of the VDG is set by the output of the B side of the second PIA.
// The VDG type implements the pia.Observer interface for this purpose.
package vdg
