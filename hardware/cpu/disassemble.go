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
	"strings"

	"github.com/jetsetilly/gopher6809/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
)

var definitions = instructions.GetDefinitions()

// Disassemble returns the instruction at the address in assembler notation
// and the address of the following instruction. Memory is read through the
// supplied interface so reads should be free of side effects.
func Disassemble(mem Memory, address uint16) (string, uint16) {
	pc := address
	read := func() uint8 {
		v := mem.Read(pc)
		pc++
		return v
	}
	read16 := func() uint16 {
		hi := read()
		lo := read()
		return uint16(hi)<<8 | uint16(lo)
	}

	b := read()
	page := 0
	prefix := uint16(0)
	for b == instructions.Page2 || b == instructions.Page3 {
		if b == instructions.Page2 {
			page = 1
		} else {
			page = 2
		}
		prefix = uint16(b) << 8
		b = read()
	}
	opcode := prefix | uint16(b)

	defn := definitions.Lookup(page, uint8(opcode))
	if defn == nil {
		return fmt.Sprintf("%04x  ???  (%#02x)", address, opcode), pc
	}

	var operand string

	switch defn.AddressingMode {
	case instructions.Inherent:
	case instructions.Immediate:
		switch defn.Operator {
		case instructions.Psh, instructions.Pul:
			operand = stackList(read(), defn.Register)
		case instructions.Exg, instructions.Tfr:
			pb := read()
			operand = fmt.Sprintf("%s,%s", registers.Code(pb>>4), registers.Code(pb&0x0f))
		default:
			if defn.Operator.Wide() {
				operand = fmt.Sprintf("#$%04x", read16())
			} else {
				operand = fmt.Sprintf("#$%02x", read())
			}
		}
	case instructions.Direct:
		operand = fmt.Sprintf("<$%02x", read())
	case instructions.Extended:
		operand = fmt.Sprintf("$%04x", read16())
	case instructions.Relative:
		off := signExtend8(read())
		operand = fmt.Sprintf("$%04x", pc+off)
	case instructions.LongRelative:
		off := read16()
		operand = fmt.Sprintf("$%04x", pc+off)
	case instructions.Indexed:
		operand = indexedOperand(read, read16, &pc)
	}

	if operand == "" {
		return fmt.Sprintf("%04x  %s", address, defn.Mnemonic), pc
	}
	return fmt.Sprintf("%04x  %-5s %s", address, defn.Mnemonic, operand), pc
}

func stackList(pb uint8, stack instructions.Register) string {
	other := "U"
	if stack == instructions.RegU {
		other = "S"
	}
	names := []string{"CC", "A", "B", "DP", "X", "Y", other, "PC"}

	var l []string
	for i, n := range names {
		if pb&(1<<i) != 0 {
			l = append(l, n)
		}
	}
	return strings.Join(l, ",")
}

func indexedOperand(read func() uint8, read16 func() uint16, pc *uint16) string {
	pb := read()
	r := string("XYUS"[(pb>>5)&0x03])

	if pb&0x80 == 0x00 {
		off := int(pb & 0x1f)
		if off >= 0x10 {
			off -= 0x20
		}
		return fmt.Sprintf("%d,%s", off, r)
	}

	var s string
	switch pb & 0x0f {
	case 0x00:
		s = fmt.Sprintf(",%s+", r)
	case 0x01:
		s = fmt.Sprintf(",%s++", r)
	case 0x02:
		s = fmt.Sprintf(",-%s", r)
	case 0x03:
		s = fmt.Sprintf(",--%s", r)
	case 0x05:
		s = fmt.Sprintf("B,%s", r)
	case 0x06:
		s = fmt.Sprintf("A,%s", r)
	case 0x08:
		s = fmt.Sprintf("%d,%s", int8(read()), r)
	case 0x09:
		s = fmt.Sprintf("%d,%s", int16(read16()), r)
	case 0x0b:
		s = fmt.Sprintf("D,%s", r)
	case 0x0c:
		off := signExtend8(read())
		s = fmt.Sprintf("$%04x,PCR", *pc+off)
	case 0x0d:
		off := read16()
		s = fmt.Sprintf("$%04x,PCR", *pc+off)
	case 0x0f:
		s = fmt.Sprintf("$%04x", read16())
	default:
		s = fmt.Sprintf(",%s", r)
	}

	if pb&0x10 == 0x10 {
		return fmt.Sprintf("[%s]", s)
	}
	return s
}
