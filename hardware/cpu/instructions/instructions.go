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

import "fmt"

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint16
	Mnemonic       string
	Operator       Operator
	Register       Register
	AddressingMode AddressingMode
	Cycles         int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%04x %s (%d cycles) [mode=%s]", defn.OpCode, defn.Mnemonic, defn.Cycles, defn.AddressingMode)
}

// Page returns the opcode page of the instruction. Zero for instructions
// without a prefix.
func (defn Definition) Page() int {
	switch defn.OpCode >> 8 {
	case 0x10:
		return 1
	case 0x11:
		return 2
	}
	return 0
}

// Opcode prefixes for the second and third pages.
const (
	Page2 = 0x10
	Page3 = 0x11
)

// Table of instruction definitions, indexed by page and then by opcode.
type Table [3][256]*Definition

// Lookup returns the definition for the opcode on the given page. Returns
// nil if the opcode is not defined.
func (tab *Table) Lookup(page int, opcode uint8) *Definition {
	return tab[page][opcode]
}

func (tab *Table) add(defn Definition) {
	d := defn
	tab[d.Page()][d.OpCode&0xff] = &d
}

// cycles for the direct, indexed and extended forms of an instruction, plus
// the immediate form if it has one.
type cycleRow struct {
	imm, dir, idx, ext int
}

// one column of memory operations. the four addressing modes are placed
// 0x10 opcodes apart starting at base (immediate). a cycle count of zero means
// that the mode does not exist.
func (tab *Table) column(opcode uint16, mnemonic string, op Operator, reg Register, c cycleRow) {
	modes := []struct {
		mode   AddressingMode
		cycles int
	}{
		{Immediate, c.imm},
		{Direct, c.dir},
		{Indexed, c.idx},
		{Extended, c.ext},
	}
	for i, m := range modes {
		if m.cycles == 0 {
			continue
		}
		tab.add(Definition{
			OpCode:         opcode + uint16(i)*0x10,
			Mnemonic:       mnemonic,
			Operator:       op,
			Register:       reg,
			AddressingMode: m.mode,
			Cycles:         m.cycles,
		})
	}
}

var (
	acc8    = cycleRow{2, 4, 4, 5}
	store8  = cycleRow{0, 4, 4, 5}
	arith16 = cycleRow{4, 6, 6, 7}
	load16  = cycleRow{3, 5, 5, 6}
	store16 = cycleRow{0, 5, 5, 6}
	jsr     = cycleRow{0, 7, 7, 8}
	cmp16p  = cycleRow{5, 7, 7, 8}
	load16p = cycleRow{4, 6, 6, 7}
	stor16p = cycleRow{0, 6, 6, 7}
)

var branchMnemonics = [16]string{
	"BRA", "BRN", "BHI", "BLS", "BCC", "BCS", "BNE", "BEQ",
	"BVC", "BVS", "BPL", "BMI", "BGE", "BLT", "BGT", "BLE",
}

// GetDefinitions returns the table of instruction definitions.
func GetDefinitions() *Table {
	tab := &Table{}

	// memory and accumulator unary operations
	unary := []struct {
		opcode   uint8
		mnemonic string
		op       Operator
	}{
		{0x00, "NEG", Neg},
		{0x03, "COM", Com},
		{0x04, "LSR", Lsr},
		{0x06, "ROR", Ror},
		{0x07, "ASR", Asr},
		{0x08, "ASL", Asl},
		{0x09, "ROL", Rol},
		{0x0a, "DEC", Dec},
		{0x0c, "INC", Inc},
		{0x0d, "TST", Tst},
		{0x0f, "CLR", Clr},
	}
	for _, u := range unary {
		o := uint16(u.opcode)
		tab.add(Definition{OpCode: o, Mnemonic: u.mnemonic, Operator: u.op, AddressingMode: Direct, Cycles: 6})
		tab.add(Definition{OpCode: o + 0x40, Mnemonic: u.mnemonic + "A", Operator: u.op, Register: RegA, AddressingMode: Inherent, Cycles: 2})
		tab.add(Definition{OpCode: o + 0x50, Mnemonic: u.mnemonic + "B", Operator: u.op, Register: RegB, AddressingMode: Inherent, Cycles: 2})
		tab.add(Definition{OpCode: o + 0x60, Mnemonic: u.mnemonic, Operator: u.op, AddressingMode: Indexed, Cycles: 6})
		tab.add(Definition{OpCode: o + 0x70, Mnemonic: u.mnemonic, Operator: u.op, AddressingMode: Extended, Cycles: 7})
	}
	tab.add(Definition{OpCode: 0x0e, Mnemonic: "JMP", Operator: Jmp, AddressingMode: Direct, Cycles: 3})
	tab.add(Definition{OpCode: 0x6e, Mnemonic: "JMP", Operator: Jmp, AddressingMode: Indexed, Cycles: 3})
	tab.add(Definition{OpCode: 0x7e, Mnemonic: "JMP", Operator: Jmp, AddressingMode: Extended, Cycles: 4})

	// miscellaneous
	tab.add(Definition{OpCode: 0x12, Mnemonic: "NOP", Operator: Nop, AddressingMode: Inherent, Cycles: 2})
	tab.add(Definition{OpCode: 0x13, Mnemonic: "SYNC", Operator: Sync, AddressingMode: Inherent, Cycles: 2})
	tab.add(Definition{OpCode: 0x16, Mnemonic: "LBRA", Operator: Lbra, AddressingMode: LongRelative, Cycles: 5})
	tab.add(Definition{OpCode: 0x17, Mnemonic: "LBSR", Operator: Lbsr, AddressingMode: LongRelative, Cycles: 9})
	tab.add(Definition{OpCode: 0x19, Mnemonic: "DAA", Operator: Daa, AddressingMode: Inherent, Cycles: 2})
	tab.add(Definition{OpCode: 0x1a, Mnemonic: "ORCC", Operator: Orcc, AddressingMode: Immediate, Cycles: 3})
	tab.add(Definition{OpCode: 0x1c, Mnemonic: "ANDCC", Operator: Andcc, AddressingMode: Immediate, Cycles: 3})
	tab.add(Definition{OpCode: 0x1d, Mnemonic: "SEX", Operator: Sex, AddressingMode: Inherent, Cycles: 2})
	tab.add(Definition{OpCode: 0x1e, Mnemonic: "EXG", Operator: Exg, AddressingMode: Immediate, Cycles: 8})
	tab.add(Definition{OpCode: 0x1f, Mnemonic: "TFR", Operator: Tfr, AddressingMode: Immediate, Cycles: 6})

	// branches
	for i, m := range branchMnemonics {
		tab.add(Definition{OpCode: 0x20 + uint16(i), Mnemonic: m, Operator: Branch, AddressingMode: Relative, Cycles: 3})
		if i > 0 {
			tab.add(Definition{OpCode: 0x1020 + uint16(i), Mnemonic: "L" + m, Operator: LongBranch, AddressingMode: LongRelative, Cycles: 5})
		}
	}

	tab.add(Definition{OpCode: 0x30, Mnemonic: "LEAX", Operator: Lea, Register: RegX, AddressingMode: Indexed, Cycles: 4})
	tab.add(Definition{OpCode: 0x31, Mnemonic: "LEAY", Operator: Lea, Register: RegY, AddressingMode: Indexed, Cycles: 4})
	tab.add(Definition{OpCode: 0x32, Mnemonic: "LEAS", Operator: Lea, Register: RegS, AddressingMode: Indexed, Cycles: 4})
	tab.add(Definition{OpCode: 0x33, Mnemonic: "LEAU", Operator: Lea, Register: RegU, AddressingMode: Indexed, Cycles: 4})
	tab.add(Definition{OpCode: 0x34, Mnemonic: "PSHS", Operator: Psh, Register: RegS, AddressingMode: Immediate, Cycles: 5})
	tab.add(Definition{OpCode: 0x35, Mnemonic: "PULS", Operator: Pul, Register: RegS, AddressingMode: Immediate, Cycles: 5})
	tab.add(Definition{OpCode: 0x36, Mnemonic: "PSHU", Operator: Psh, Register: RegU, AddressingMode: Immediate, Cycles: 5})
	tab.add(Definition{OpCode: 0x37, Mnemonic: "PULU", Operator: Pul, Register: RegU, AddressingMode: Immediate, Cycles: 5})
	tab.add(Definition{OpCode: 0x39, Mnemonic: "RTS", Operator: Rts, AddressingMode: Inherent, Cycles: 5})
	tab.add(Definition{OpCode: 0x3a, Mnemonic: "ABX", Operator: Abx, AddressingMode: Inherent, Cycles: 3})
	tab.add(Definition{OpCode: 0x3b, Mnemonic: "RTI", Operator: Rti, AddressingMode: Inherent, Cycles: 6})
	tab.add(Definition{OpCode: 0x3c, Mnemonic: "CWAI", Operator: Cwai, AddressingMode: Immediate, Cycles: 20})
	tab.add(Definition{OpCode: 0x3d, Mnemonic: "MUL", Operator: Mul, AddressingMode: Inherent, Cycles: 11})
	tab.add(Definition{OpCode: 0x3f, Mnemonic: "SWI", Operator: Swi, AddressingMode: Inherent, Cycles: 19})
	tab.add(Definition{OpCode: 0x103f, Mnemonic: "SWI2", Operator: Swi2, AddressingMode: Inherent, Cycles: 20})
	tab.add(Definition{OpCode: 0x113f, Mnemonic: "SWI3", Operator: Swi3, AddressingMode: Inherent, Cycles: 20})

	// accumulator operations
	accumulator := []struct {
		opcode   uint16
		mnemonic string
		op       Operator
	}{
		{0x80, "SUB", Sub},
		{0x81, "CMP", Cmp},
		{0x82, "SBC", Sbc},
		{0x84, "AND", And},
		{0x85, "BIT", Bit},
		{0x86, "LD", Ld},
		{0x88, "EOR", Eor},
		{0x89, "ADC", Adc},
		{0x8a, "OR", Or},
		{0x8b, "ADD", Add},
	}
	for _, a := range accumulator {
		tab.column(a.opcode, a.mnemonic+"A", a.op, RegA, acc8)
		tab.column(a.opcode+0x40, a.mnemonic+"B", a.op, RegB, acc8)
	}
	tab.column(0x87, "STA", St, RegA, store8)
	tab.column(0xc7, "STB", St, RegB, store8)

	// 16 bit operations
	tab.column(0x83, "SUBD", Sub16, RegD, arith16)
	tab.column(0xc3, "ADDD", Add16, RegD, arith16)
	tab.column(0x8c, "CMPX", Cmp16, RegX, arith16)
	tab.column(0x8e, "LDX", Ld16, RegX, load16)
	tab.column(0xcc, "LDD", Ld16, RegD, load16)
	tab.column(0xce, "LDU", Ld16, RegU, load16)
	tab.column(0x8f, "STX", St16, RegX, store16)
	tab.column(0xcd, "STD", St16, RegD, store16)
	tab.column(0xcf, "STU", St16, RegU, store16)

	tab.add(Definition{OpCode: 0x8d, Mnemonic: "BSR", Operator: Bsr, AddressingMode: Relative, Cycles: 7})
	tab.column(0x8d, "JSR", Jsr, RegNone, jsr)

	// second page
	tab.column(0x1083, "CMPD", Cmp16, RegD, cmp16p)
	tab.column(0x108c, "CMPY", Cmp16, RegY, cmp16p)
	tab.column(0x108e, "LDY", Ld16, RegY, load16p)
	tab.column(0x108f, "STY", St16, RegY, stor16p)
	tab.column(0x10ce, "LDS", Ld16, RegS, load16p)
	tab.column(0x10cf, "STS", St16, RegS, stor16p)

	// third page
	tab.column(0x1183, "CMPU", Cmp16, RegU, cmp16p)
	tab.column(0x118c, "CMPS", Cmp16, RegS, cmp16p)

	return tab
}
