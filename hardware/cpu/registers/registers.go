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

package registers

import (
	"fmt"
)

// Registers is the complete register file of the 6809.
type Registers struct {
	A  uint8
	B  uint8
	X  uint16
	Y  uint16
	U  uint16
	S  uint16
	PC uint16
	DP uint8
	CC ConditionCodes
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=%04x A=%02x B=%02x X=%04x Y=%04x U=%04x S=%04x DP=%02x CC=%s",
		r.PC, r.A, r.B, r.X, r.Y, r.U, r.S, r.DP, r.CC)
}

// D returns the accumulators as a single 16 bit value. A is the most
// significant byte.
func (r Registers) D() uint16 {
	return uint16(r.A)<<8 | uint16(r.B)
}

// SetD loads both accumulators with a 16 bit value.
func (r *Registers) SetD(v uint16) {
	r.A = uint8(v >> 8)
	r.B = uint8(v)
}

// Code identifies a register in the post-byte of the EXG and TFR
// instructions.
type Code uint8

// List of register codes.
const (
	CodeD  Code = 0x0
	CodeX  Code = 0x1
	CodeY  Code = 0x2
	CodeU  Code = 0x3
	CodeS  Code = 0x4
	CodePC Code = 0x5
	CodeA  Code = 0x8
	CodeB  Code = 0x9
	CodeCC Code = 0xa
	CodeDP Code = 0xb
)

var codeLabels = map[Code]string{
	CodeD:  "D",
	CodeX:  "X",
	CodeY:  "Y",
	CodeU:  "U",
	CodeS:  "S",
	CodePC: "PC",
	CodeA:  "A",
	CodeB:  "B",
	CodeCC: "CC",
	CodeDP: "DP",
}

func (c Code) String() string {
	if l, ok := codeLabels[c]; ok {
		return l
	}
	return "?"
}

// Wide returns true if the register is 16 bits wide.
func (c Code) Wide() bool {
	return c < 0x8
}

// Get returns the value of the register. The value of an 8 bit register is
// returned in the low byte with the high byte set to 0xff. Unknown codes
// return 0xffff.
func (r *Registers) Get(c Code) uint16 {
	switch c {
	case CodeD:
		return r.D()
	case CodeX:
		return r.X
	case CodeY:
		return r.Y
	case CodeU:
		return r.U
	case CodeS:
		return r.S
	case CodePC:
		return r.PC
	case CodeA:
		return 0xff00 | uint16(r.A)
	case CodeB:
		return 0xff00 | uint16(r.B)
	case CodeCC:
		return 0xff00 | uint16(r.CC.Value())
	case CodeDP:
		return 0xff00 | uint16(r.DP)
	}
	return 0xffff
}

// Set the register. An 8 bit register takes the low byte of the value.
// Unknown codes are ignored.
func (r *Registers) Set(c Code, v uint16) {
	switch c {
	case CodeD:
		r.SetD(v)
	case CodeX:
		r.X = v
	case CodeY:
		r.Y = v
	case CodeU:
		r.U = v
	case CodeS:
		r.S = v
	case CodePC:
		r.PC = v
	case CodeA:
		r.A = uint8(v)
	case CodeB:
		r.B = uint8(v)
	case CodeCC:
		r.CC.Load(uint8(v))
	case CodeDP:
		r.DP = uint8(v)
	}
}
