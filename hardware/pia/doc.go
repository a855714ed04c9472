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

// Package pia implements the MC6821 Peripheral Interface Adapter. The machine
// has two of them. The first handles the keyboard, the joystick comparator
// and the field/line sync interrupts. The second handles the DAC, the
// cassette, the VDG mode lines and the cartridge interrupt.
//
// Each PIA has two sides, A and B. Each side has a data register, a data
// direction register and a control register. Register 0 of each side is
// either the data register or the direction register, depending on bit 2 of
// the control register. Register 1 is always the control register.
//
// Changes to the output bits of a side are reported to Observer
// implementations. Changes to the C2 line, when it is configured as an
// output, are reported to ControlObserver implementations. This is how the
// rest of the machine learns of the values written by the CPU.
package pia
