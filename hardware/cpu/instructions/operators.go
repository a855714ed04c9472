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

package instructions

// Operator is the operation performed by an instruction.
type Operator int

// List of operators.
const (
	Neg Operator = iota
	Com
	Lsr
	Ror
	Asr
	Asl
	Rol
	Dec
	Inc
	Tst
	Jmp
	Clr

	Nop
	Sync
	Lbra
	Lbsr
	Daa
	Orcc
	Andcc
	Sex
	Exg
	Tfr

	Branch
	LongBranch
	Bsr
	Jsr
	Rts

	Lea
	Psh
	Pul
	Abx
	Rti
	Cwai
	Mul
	Swi
	Swi2
	Swi3

	Sub
	Cmp
	Sbc
	And
	Bit
	Ld
	St
	Eor
	Adc
	Or
	Add

	Sub16
	Add16
	Cmp16
	Ld16
	St16
)

// Wide returns true if the operator works on a 16 bit register.
func (o Operator) Wide() bool {
	return o >= Sub16
}

// Register is the register that an instruction works on.
type Register int

// List of registers.
const (
	RegNone Register = iota
	RegA
	RegB
	RegD
	RegX
	RegY
	RegU
	RegS
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegB:
		return "B"
	case RegD:
		return "D"
	case RegX:
		return "X"
	case RegY:
		return "Y"
	case RegU:
		return "U"
	case RegS:
		return "S"
	}
	return ""
}
