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

// Package hardware is the base package for the emulated 6809 home computer.
// It brings together the CPU, the SAM, the two PIAs, the VDG, the disk
// controller and the peripherals and runs them against a single virtual
// clock.
//
// The virtual clock is advanced only by the CPU. StepOneField() runs the CPU
// one instruction at a time and after each instruction brings every other
// component up to the new virtual time. The VDG is driven by the time of its
// next event and feeds the horizontal and field sync lines into the first
// PIA. The disk controller asks for a single deferred step which is run when
// the virtual clock reaches it.
//
// Ahead() compares the virtual clock with the wall clock. A front end uses it
// to pace the emulation to real time.
package hardware
