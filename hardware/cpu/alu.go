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

// arithmetic and logic operations. each function sets the condition codes
// for the operation and returns the result.

func (mc *CPU) add8(a uint8, b uint8, carry bool) uint8 {
	c := uint16(0)
	if carry {
		c = 1
	}
	r := uint16(a) + uint16(b) + c
	v := uint8(r)
	mc.CC.H = (a^b^v)&0x10 == 0x10
	mc.CC.V = (a^v)&(b^v)&0x80 == 0x80
	mc.CC.C = r > 0xff
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) sub8(a uint8, b uint8, borrow bool) uint8 {
	c := uint16(0)
	if borrow {
		c = 1
	}
	r := uint16(a) - uint16(b) - c
	v := uint8(r)
	mc.CC.V = (a^b)&(a^v)&0x80 == 0x80
	mc.CC.C = r&0x100 == 0x100
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) add16(a uint16, b uint16) uint16 {
	r := uint32(a) + uint32(b)
	v := uint16(r)
	mc.CC.V = (a^v)&(b^v)&0x8000 == 0x8000
	mc.CC.C = r > 0xffff
	mc.CC.SetNZ16(v)
	return v
}

func (mc *CPU) sub16(a uint16, b uint16) uint16 {
	r := uint32(a) - uint32(b)
	v := uint16(r)
	mc.CC.V = (a^b)&(a^v)&0x8000 == 0x8000
	mc.CC.C = r&0x10000 == 0x10000
	mc.CC.SetNZ16(v)
	return v
}

// logic sets the flags for the AND, OR, EOR, BIT, LD and ST family.
func (mc *CPU) logic8(v uint8) uint8 {
	mc.CC.V = false
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) logic16(v uint16) uint16 {
	mc.CC.V = false
	mc.CC.SetNZ16(v)
	return v
}

func (mc *CPU) neg(v uint8) uint8 {
	return mc.sub8(0, v, false)
}

func (mc *CPU) com(v uint8) uint8 {
	v = ^v
	mc.CC.C = true
	return mc.logic8(v)
}

func (mc *CPU) lsr(v uint8) uint8 {
	mc.CC.C = v&0x01 == 0x01
	v >>= 1
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) ror(v uint8) uint8 {
	c := mc.CC.C
	mc.CC.C = v&0x01 == 0x01
	v >>= 1
	if c {
		v |= 0x80
	}
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) asr(v uint8) uint8 {
	mc.CC.C = v&0x01 == 0x01
	v = (v >> 1) | (v & 0x80)
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) asl(v uint8) uint8 {
	mc.CC.C = v&0x80 == 0x80
	mc.CC.V = (v^(v<<1))&0x80 == 0x80
	v <<= 1
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) rol(v uint8) uint8 {
	c := mc.CC.C
	mc.CC.C = v&0x80 == 0x80
	mc.CC.V = (v^(v<<1))&0x80 == 0x80
	v <<= 1
	if c {
		v |= 0x01
	}
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) dec(v uint8) uint8 {
	mc.CC.V = v == 0x80
	v--
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) inc(v uint8) uint8 {
	mc.CC.V = v == 0x7f
	v++
	mc.CC.SetNZ8(v)
	return v
}

func (mc *CPU) tst(v uint8) uint8 {
	return mc.logic8(v)
}

func (mc *CPU) clr(_ uint8) uint8 {
	mc.CC.C = false
	return mc.logic8(0)
}

// daa adjusts A to binary coded decimal after an addition. V is cleared and
// C is set if the adjustment carries out of the high digit.
func (mc *CPU) daa() {
	lsn := mc.A & 0x0f
	msn := mc.A >> 4

	var correction uint16
	if mc.CC.H || lsn > 9 {
		correction |= 0x06
	}
	if mc.CC.C || msn > 9 || (msn > 8 && lsn > 9) {
		correction |= 0x60
	}

	r := uint16(mc.A) + correction
	mc.A = uint8(r)
	mc.CC.C = mc.CC.C || r > 0xff
	mc.CC.V = false
	mc.CC.SetNZ8(mc.A)
}

// mul multiplies A and B, leaving the result in D. C is a copy of bit 7 of
// the result so that the high byte can be rounded with ADCA #0.
func (mc *CPU) mul() {
	d := uint16(mc.A) * uint16(mc.B)
	mc.SetD(d)
	mc.CC.Z = d == 0
	mc.CC.C = d&0x80 == 0x80
}

// sex extends the sign of B into A.
func (mc *CPU) sex() {
	if mc.B&0x80 == 0x80 {
		mc.A = 0xff
	} else {
		mc.A = 0x00
	}
	mc.CC.SetNZ16(mc.D())
}

// condition returns the result of the test encoded in the low nibble of a
// branch opcode.
func (mc *CPU) condition(opcode uint16) bool {
	cc := mc.CC
	var t bool
	switch (opcode >> 1) & 0x07 {
	case 0:
		t = true
	case 1:
		t = !(cc.C || cc.Z)
	case 2:
		t = !cc.C
	case 3:
		t = !cc.Z
	case 4:
		t = !cc.V
	case 5:
		t = !cc.N
	case 6:
		t = cc.N == cc.V
	case 7:
		t = !cc.Z && cc.N == cc.V
	}

	// odd opcodes test the opposite condition
	if opcode&0x01 == 0x01 {
		return !t
	}
	return t
}
