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
	"fmt"

	"github.com/jetsetilly/gopher6809/curated"
	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
)

// Memory is the interface the CPU uses to access the address space.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// interrupt and reset vectors.
const (
	VectorSWI3  = uint16(0xfff2)
	VectorSWI2  = uint16(0xfff4)
	VectorFIRQ  = uint16(0xfff6)
	VectorIRQ   = uint16(0xfff8)
	VectorSWI   = uint16(0xfffa)
	VectorNMI   = uint16(0xfffc)
	VectorReset = uint16(0xfffe)
)

// UnimplementedInstruction is the error pattern returned by Step() when an
// undefined opcode is encountered.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#04x) at (%#04x)"

// Result describes the most recent call to Step().
type Result struct {
	// address of the instruction
	Address uint16

	// the instruction definition. nil if no instruction was executed
	Defn *instructions.Definition

	// number of cycles taken, including the servicing of any interrupt
	Cycles int

	// an interrupt was serviced before the instruction
	Interrupt string
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("(%d cycles)", r.Cycles)
	}
	return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
}

// CPU implements the MC6809.
type CPU struct {
	registers.Registers

	mem  Memory
	defs *instructions.Table

	// virtual time in nanoseconds. advanced only by Step()
	Time uint64

	// length of a cycle in nanoseconds
	CycleNanoseconds uint64

	// the HALT input
	Halted bool

	// interrupt inputs
	irq        bool
	firq       bool
	nmi        bool
	nmiPending bool

	// waiting after CWAI or SYNC
	waitCWAI bool
	waitSync bool

	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory) *CPU {
	return &CPU{
		mem:              mem,
		defs:             instructions.GetDefinitions(),
		CycleNanoseconds: clocks.CycleNanoseconds,
	}
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// Reset the CPU. Interrupts are masked and PC is loaded from the reset
// vector. Virtual time is not changed.
func (mc *CPU) Reset() {
	mc.DP = 0
	mc.CC.Load(registers.CCIRQ | registers.CCFIRQ)
	mc.irq = false
	mc.firq = false
	mc.nmi = false
	mc.nmiPending = false
	mc.waitCWAI = false
	mc.waitSync = false
	mc.Halted = false
	mc.LastResult = Result{}
	mc.PC = mc.read16(VectorReset)
}

// SetIRQ sets the level of the IRQ input. True is asserted.
func (mc *CPU) SetIRQ(level bool) {
	mc.irq = level
}

// SetFIRQ sets the level of the FIRQ input. True is asserted.
func (mc *CPU) SetFIRQ(level bool) {
	mc.firq = level
}

// SetNMI sets the level of the NMI input. True is asserted. An NMI is
// latched when the input changes from false to true.
func (mc *CPU) SetNMI(level bool) {
	if level && !mc.nmi {
		mc.nmiPending = true
	}
	mc.nmi = level
}

// Waiting returns true if the CPU is waiting for an interrupt after a CWAI
// or SYNC instruction.
func (mc *CPU) Waiting() bool {
	return mc.waitCWAI || mc.waitSync
}

// Step services any pending interrupt and executes one instruction.
func (mc *CPU) Step() error {
	mc.LastResult = Result{}
	defer func() {
		mc.Time += uint64(mc.LastResult.Cycles) * mc.CycleNanoseconds
	}()

	if mc.Halted {
		mc.LastResult.Cycles = 1
		return nil
	}

	mc.serviceInterrupts()

	if mc.Waiting() {
		if mc.LastResult.Cycles == 0 {
			mc.LastResult.Cycles = 1
		}
		return nil
	}

	return mc.execute()
}

func (mc *CPU) read16(address uint16) uint16 {
	hi := mc.mem.Read(address)
	lo := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v>>8))
	mc.mem.Write(address+1, uint8(v))
}

func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.PC)
	mc.PC++
	return v
}

func (mc *CPU) fetch16() uint16 {
	v := mc.read16(mc.PC)
	mc.PC += 2
	return v
}

// push and pull on either of the two stacks. the stack pointer always points
// at the most recently pushed byte.
func (mc *CPU) push8(sp *uint16, v uint8) {
	*sp--
	mc.mem.Write(*sp, v)
}

func (mc *CPU) push16(sp *uint16, v uint16) {
	mc.push8(sp, uint8(v))
	mc.push8(sp, uint8(v>>8))
}

func (mc *CPU) pull8(sp *uint16) uint8 {
	v := mc.mem.Read(*sp)
	*sp++
	return v
}

func (mc *CPU) pull16(sp *uint16) uint16 {
	hi := mc.pull8(sp)
	lo := mc.pull8(sp)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) unimplemented(opcode uint16, address uint16) error {
	return curated.Errorf(UnimplementedInstruction, opcode, address)
}
