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
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
)

// execute fetches, decodes and executes the instruction at PC.
func (mc *CPU) execute() error {
	address := mc.PC

	// consecutive page prefixes are consumed. the last one selects the page
	// and each additional prefix costs a cycle
	b := mc.fetch8()
	page := 0
	prefix := uint16(0)
	for b == instructions.Page2 || b == instructions.Page3 {
		if page != 0 {
			mc.LastResult.Cycles++
		}
		if b == instructions.Page2 {
			page = 1
		} else {
			page = 2
		}
		prefix = uint16(b) << 8
		b = mc.fetch8()
	}
	opcode := prefix | uint16(b)

	defn := mc.defs.Lookup(page, uint8(opcode))
	if defn == nil {
		mc.LastResult.Address = address
		mc.LastResult.Cycles++
		return mc.unimplemented(opcode, address)
	}

	mc.LastResult.Address = address
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles += defn.Cycles

	switch defn.Operator {
	case instructions.Neg:
		mc.modify(defn, mc.neg)
	case instructions.Com:
		mc.modify(defn, mc.com)
	case instructions.Lsr:
		mc.modify(defn, mc.lsr)
	case instructions.Ror:
		mc.modify(defn, mc.ror)
	case instructions.Asr:
		mc.modify(defn, mc.asr)
	case instructions.Asl:
		mc.modify(defn, mc.asl)
	case instructions.Rol:
		mc.modify(defn, mc.rol)
	case instructions.Dec:
		mc.modify(defn, mc.dec)
	case instructions.Inc:
		mc.modify(defn, mc.inc)
	case instructions.Clr:
		mc.modify(defn, mc.clr)

	case instructions.Tst:
		if defn.AddressingMode == instructions.Inherent {
			mc.tst(*mc.accumulator(defn.Register))
		} else {
			mc.tst(mc.operand8(defn.AddressingMode))
		}

	case instructions.Jmp:
		mc.PC = mc.effectiveAddress(defn.AddressingMode)

	case instructions.Nop:

	case instructions.Sync:
		mc.waitSync = true

	case instructions.Lbra:
		off := mc.fetch16()
		mc.PC += off

	case instructions.Lbsr:
		off := mc.fetch16()
		mc.push16(&mc.S, mc.PC)
		mc.PC += off

	case instructions.Daa:
		mc.daa()

	case instructions.Orcc:
		mc.CC.Load(mc.CC.Value() | mc.fetch8())

	case instructions.Andcc:
		mc.CC.Load(mc.CC.Value() & mc.fetch8())

	case instructions.Sex:
		mc.sex()

	case instructions.Exg:
		pb := mc.fetch8()
		src := registers.Code(pb >> 4)
		dst := registers.Code(pb & 0x0f)
		a := mc.Get(src)
		b := mc.Get(dst)
		mc.Set(src, b)
		mc.Set(dst, a)

	case instructions.Tfr:
		pb := mc.fetch8()
		mc.Set(registers.Code(pb&0x0f), mc.Get(registers.Code(pb>>4)))

	case instructions.Branch:
		off := signExtend8(mc.fetch8())
		if mc.condition(defn.OpCode) {
			mc.PC += off
		}

	case instructions.LongBranch:
		off := mc.fetch16()
		if mc.condition(defn.OpCode) {
			mc.PC += off
			mc.LastResult.Cycles++
		}

	case instructions.Bsr:
		off := signExtend8(mc.fetch8())
		mc.push16(&mc.S, mc.PC)
		mc.PC += off

	case instructions.Jsr:
		ea := mc.effectiveAddress(defn.AddressingMode)
		mc.push16(&mc.S, mc.PC)
		mc.PC = ea

	case instructions.Rts:
		mc.PC = mc.pull16(&mc.S)

	case instructions.Lea:
		ea := mc.effectiveAddress(defn.AddressingMode)
		mc.set16(defn.Register, ea)
		if defn.Register == instructions.RegX || defn.Register == instructions.RegY {
			mc.CC.Z = ea == 0
		}

	case instructions.Psh:
		mc.LastResult.Cycles += mc.pushRegisters(defn.Register, mc.fetch8())

	case instructions.Pul:
		mc.LastResult.Cycles += mc.pullRegisters(defn.Register, mc.fetch8())

	case instructions.Abx:
		mc.X += uint16(mc.B)

	case instructions.Rti:
		mc.CC.Load(mc.pull8(&mc.S))
		if mc.CC.E {
			mc.pullRegisters(instructions.RegS, 0xfe)
			mc.LastResult.Cycles += 9
		} else {
			mc.PC = mc.pull16(&mc.S)
		}

	case instructions.Cwai:
		mc.CC.Load(mc.CC.Value() & mc.fetch8())
		mc.CC.E = true
		mc.pushEntire()
		mc.waitCWAI = true

	case instructions.Mul:
		mc.mul()

	case instructions.Swi:
		mc.softwareInterrupt(VectorSWI, true)
	case instructions.Swi2:
		mc.softwareInterrupt(VectorSWI2, false)
	case instructions.Swi3:
		mc.softwareInterrupt(VectorSWI3, false)

	case instructions.Sub, instructions.Cmp, instructions.Sbc, instructions.And, instructions.Bit,
		instructions.Ld, instructions.Eor, instructions.Adc, instructions.Or, instructions.Add:
		mc.accumulate(defn)

	case instructions.St:
		ea := mc.effectiveAddress(defn.AddressingMode)
		mc.mem.Write(ea, mc.logic8(*mc.accumulator(defn.Register)))

	case instructions.Sub16:
		mc.SetD(mc.sub16(mc.D(), mc.operand16(defn.AddressingMode)))

	case instructions.Add16:
		mc.SetD(mc.add16(mc.D(), mc.operand16(defn.AddressingMode)))

	case instructions.Cmp16:
		mc.sub16(mc.get16(defn.Register), mc.operand16(defn.AddressingMode))

	case instructions.Ld16:
		mc.set16(defn.Register, mc.logic16(mc.operand16(defn.AddressingMode)))

	case instructions.St16:
		ea := mc.effectiveAddress(defn.AddressingMode)
		mc.write16(ea, mc.logic16(mc.get16(defn.Register)))

	default:
		return mc.unimplemented(opcode, address)
	}

	return nil
}

// modify applies a read-modify-write operation to an accumulator or to
// memory.
func (mc *CPU) modify(defn *instructions.Definition, f func(uint8) uint8) {
	if defn.AddressingMode == instructions.Inherent {
		acc := mc.accumulator(defn.Register)
		*acc = f(*acc)
		return
	}
	ea := mc.effectiveAddress(defn.AddressingMode)
	mc.mem.Write(ea, f(mc.mem.Read(ea)))
}

// accumulate performs one of the 8 bit accumulator operations.
func (mc *CPU) accumulate(defn *instructions.Definition) {
	acc := mc.accumulator(defn.Register)
	v := mc.operand8(defn.AddressingMode)

	switch defn.Operator {
	case instructions.Sub:
		*acc = mc.sub8(*acc, v, false)
	case instructions.Cmp:
		mc.sub8(*acc, v, false)
	case instructions.Sbc:
		*acc = mc.sub8(*acc, v, mc.CC.C)
	case instructions.And:
		*acc = mc.logic8(*acc & v)
	case instructions.Bit:
		mc.logic8(*acc & v)
	case instructions.Ld:
		*acc = mc.logic8(v)
	case instructions.Eor:
		*acc = mc.logic8(*acc ^ v)
	case instructions.Adc:
		*acc = mc.add8(*acc, v, mc.CC.C)
	case instructions.Or:
		*acc = mc.logic8(*acc | v)
	case instructions.Add:
		*acc = mc.add8(*acc, v, false)
	}
}

func (mc *CPU) softwareInterrupt(vector uint16, mask bool) {
	mc.CC.E = true
	mc.pushEntire()
	if mask {
		mc.CC.I = true
		mc.CC.F = true
	}
	mc.PC = mc.read16(vector)
}
