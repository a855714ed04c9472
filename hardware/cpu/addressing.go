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

func signExtend8(v uint8) uint16 {
	return uint16(int16(int8(v)))
}

// effectiveAddress returns the address of the operand for the memory
// addressing modes. the program counter is moved past the operand bytes.
func (mc *CPU) effectiveAddress(mode instructions.AddressingMode) uint16 {
	switch mode {
	case instructions.Direct:
		return uint16(mc.DP)<<8 | uint16(mc.fetch8())
	case instructions.Extended:
		return mc.fetch16()
	case instructions.Indexed:
		return mc.indexed()
	}
	return 0
}

// the index register selected by bits 5 and 6 of the post-byte.
func (mc *CPU) indexRegister(pb uint8) *uint16 {
	switch (pb >> 5) & 0x03 {
	case 0:
		return &mc.X
	case 1:
		return &mc.Y
	case 2:
		return &mc.U
	}
	return &mc.S
}

// indexed decodes the post-byte of the indexed addressing mode and returns
// the effective address. the extra cycles taken by the mode are added to the
// instruction result.
func (mc *CPU) indexed() uint16 {
	pb := mc.fetch8()
	r := mc.indexRegister(pb)

	// 5 bit offset
	if pb&0x80 == 0x00 {
		mc.LastResult.Cycles++
		off := uint16(pb & 0x1f)
		if off&0x10 == 0x10 {
			off |= 0xffe0
		}
		return *r + off
	}

	var ea uint16
	var extra int

	switch pb & 0x0f {
	case 0x00:
		ea = *r
		*r++
		extra = 2
	case 0x01:
		ea = *r
		*r += 2
		extra = 3
	case 0x02:
		*r--
		ea = *r
		extra = 2
	case 0x03:
		*r -= 2
		ea = *r
		extra = 3
	case 0x04:
		ea = *r
	case 0x05:
		ea = *r + signExtend8(mc.B)
		extra = 1
	case 0x06:
		ea = *r + signExtend8(mc.A)
		extra = 1
	case 0x08:
		off := signExtend8(mc.fetch8())
		ea = *r + off
		extra = 1
	case 0x09:
		off := mc.fetch16()
		ea = *r + off
		extra = 4
	case 0x0b:
		ea = *r + mc.D()
		extra = 4
	case 0x0c:
		off := signExtend8(mc.fetch8())
		ea = mc.PC + off
		extra = 1
	case 0x0d:
		off := mc.fetch16()
		ea = mc.PC + off
		extra = 5
	case 0x0f:
		ea = mc.fetch16()
		extra = 2
	default:
		// undefined post-bytes behave like the zero offset form
		ea = *r
	}

	if pb&0x10 == 0x10 {
		ea = mc.read16(ea)
		extra += 3
	}

	mc.LastResult.Cycles += extra

	return ea
}

// operand8 returns the 8 bit operand of the instruction.
func (mc *CPU) operand8(mode instructions.AddressingMode) uint8 {
	if mode == instructions.Immediate {
		return mc.fetch8()
	}
	return mc.mem.Read(mc.effectiveAddress(mode))
}

// operand16 returns the 16 bit operand of the instruction.
func (mc *CPU) operand16(mode instructions.AddressingMode) uint16 {
	if mode == instructions.Immediate {
		return mc.fetch16()
	}
	return mc.read16(mc.effectiveAddress(mode))
}

// accumulator named by the instruction definition.
func (mc *CPU) accumulator(reg instructions.Register) *uint8 {
	if reg == instructions.RegB {
		return &mc.B
	}
	return &mc.A
}

func (mc *CPU) get16(reg instructions.Register) uint16 {
	switch reg {
	case instructions.RegD:
		return mc.D()
	case instructions.RegX:
		return mc.X
	case instructions.RegY:
		return mc.Y
	case instructions.RegU:
		return mc.U
	case instructions.RegS:
		return mc.S
	}
	return 0
}

func (mc *CPU) set16(reg instructions.Register, v uint16) {
	switch reg {
	case instructions.RegD:
		mc.SetD(v)
	case instructions.RegX:
		mc.X = v
	case instructions.RegY:
		mc.Y = v
	case instructions.RegU:
		mc.U = v
	case instructions.RegS:
		mc.S = v
	}
}
