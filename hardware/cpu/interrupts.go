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

package cpu

import (
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
)

// cycles taken to respond to an interrupt, including the stacking of
// registers.
const (
	entireCycles = 19
	fastCycles   = 10
	waitCycles   = 7
)

// serviceInterrupts checks the interrupt inputs in priority order and
// services the first unmasked one.
func (mc *CPU) serviceInterrupts() {
	switch {
	case mc.nmiPending:
		mc.nmiPending = false
		mc.interrupt("NMI", VectorNMI, true, true)
	case mc.firq && !mc.CC.F:
		mc.interrupt("FIRQ", VectorFIRQ, false, true)
	case mc.irq && !mc.CC.I:
		mc.interrupt("IRQ", VectorIRQ, true, false)
	default:
		// SYNC finishes when any interrupt input is asserted, whether or
		// not it is masked. execution continues with the next instruction
		if mc.waitSync && (mc.irq || mc.firq || mc.nmi) {
			mc.waitSync = false
		}
	}
}

// interrupt stacks the registers and jumps to the vector. the entire state
// has already been stacked if the CPU is waiting after a CWAI.
func (mc *CPU) interrupt(name string, vector uint16, entire bool, maskFIRQ bool) {
	mc.LastResult.Interrupt = name

	if mc.waitCWAI {
		mc.LastResult.Cycles += waitCycles
	} else if entire {
		mc.CC.E = true
		mc.pushEntire()
		mc.LastResult.Cycles += entireCycles
	} else {
		mc.CC.E = false
		mc.push16(&mc.S, mc.PC)
		mc.push8(&mc.S, mc.CC.Value())
		mc.LastResult.Cycles += fastCycles
	}

	mc.CC.I = true
	if maskFIRQ {
		mc.CC.F = true
	}

	mc.waitCWAI = false
	mc.waitSync = false
	mc.PC = mc.read16(vector)
}

// pushEntire stacks every register on the S stack. the E flag should be set
// before calling this function.
func (mc *CPU) pushEntire() {
	mc.pushRegisters(instructions.RegS, 0xff)
}

// pushRegisters stacks the registers selected by the post-byte of a PSH
// instruction and returns the number of bytes pushed.
func (mc *CPU) pushRegisters(stack instructions.Register, pb uint8) int {
	sp := &mc.S
	other := mc.U
	if stack == instructions.RegU {
		sp = &mc.U
		other = mc.S
	}

	n := 0
	if pb&0x80 == 0x80 {
		mc.push16(sp, mc.PC)
		n += 2
	}
	if pb&0x40 == 0x40 {
		mc.push16(sp, other)
		n += 2
	}
	if pb&0x20 == 0x20 {
		mc.push16(sp, mc.Y)
		n += 2
	}
	if pb&0x10 == 0x10 {
		mc.push16(sp, mc.X)
		n += 2
	}
	if pb&0x08 == 0x08 {
		mc.push8(sp, mc.DP)
		n++
	}
	if pb&0x04 == 0x04 {
		mc.push8(sp, mc.B)
		n++
	}
	if pb&0x02 == 0x02 {
		mc.push8(sp, mc.A)
		n++
	}
	if pb&0x01 == 0x01 {
		mc.push8(sp, mc.CC.Value())
		n++
	}
	return n
}

// pullRegisters is the opposite of pushRegisters.
func (mc *CPU) pullRegisters(stack instructions.Register, pb uint8) int {
	sp := &mc.S
	other := &mc.U
	if stack == instructions.RegU {
		sp = &mc.U
		other = &mc.S
	}

	n := 0
	if pb&0x01 == 0x01 {
		mc.CC.Load(mc.pull8(sp))
		n++
	}
	if pb&0x02 == 0x02 {
		mc.A = mc.pull8(sp)
		n++
	}
	if pb&0x04 == 0x04 {
		mc.B = mc.pull8(sp)
		n++
	}
	if pb&0x08 == 0x08 {
		mc.DP = mc.pull8(sp)
		n++
	}
	if pb&0x10 == 0x10 {
		mc.X = mc.pull16(sp)
		n += 2
	}
	if pb&0x20 == 0x20 {
		mc.Y = mc.pull16(sp)
		n += 2
	}
	if pb&0x40 == 0x40 {
		*other = mc.pull16(sp)
		n += 2
	}
	if pb&0x80 == 0x80 {
		mc.PC = mc.pull16(sp)
		n += 2
	}
	return n
}
