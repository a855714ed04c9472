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

// Package cpu emulates the MC6809 microprocessor. The CPU reads and writes
// memory through the Memory interface, which in the emulated machine is the
// bus router.
//
// The work of the CPU is done by the Step() function. Each call services the
// highest priority pending interrupt, if any, and then executes exactly one
// instruction. The virtual time of the CPU is advanced by the number of
// cycles taken multiplied by the length of a cycle.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		err := mc.Step()
//		if err != nil {
//			return err
//		}
//	}
//
// Interrupt lines are set by the owner of the CPU with SetIRQ(), SetFIRQ()
// and SetNMI(). IRQ and FIRQ are level sensitive. NMI is edge sensitive, a
// rising edge latches a single pending NMI.
//
// The Halted field reflects the HALT input of the CPU. When it is set each
// call to Step() consumes one cycle without fetching an instruction.
package cpu
